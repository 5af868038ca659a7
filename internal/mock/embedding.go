package mock

import (
	"encoding/base64"
	"encoding/binary"
	"math"

	"github.com/nulzo/openai-mock/pkg/api"
)

// Embedding answers a validated embedding request with one vector per input
// unit.
func (s *Synthesizer) Embedding(req *api.EmbeddingRequest) (resp *api.EmbeddingResponse, err error) {
	defer recoverInto(&err, "embedding")

	dimensions := 0
	if req.Dimensions != nil {
		dimensions = *req.Dimensions
	}

	units := req.Input.Units()
	data := make([]api.EmbeddingData, len(units))
	promptTokens := 0

	for i, unit := range units {
		vec := s.vectors.Vector(unit, req.Model, dimensions)

		embedding := api.Embedding{Floats: vec}
		if req.EncodingFormat == api.EncodingBase64 {
			embedding = api.Embedding{Base64: encodeBase64(vec)}
		}

		data[i] = api.EmbeddingData{
			Object:    api.ObjectEmbedding,
			Index:     i,
			Embedding: embedding,
		}

		if req.Input.IsTokens() {
			promptTokens += len(req.Input.TokenLists()[i])
		} else {
			promptTokens += s.usage.Estimate(unit)
		}
	}

	return &api.EmbeddingResponse{
		ID:      s.ids.Next(KindEmbedding),
		Object:  api.ObjectList,
		Created: s.ids.Now(),
		Model:   req.Model,
		Data:    data,
		Usage: api.EmbeddingUsage{
			PromptTokens: promptTokens,
			TotalTokens:  promptTokens,
		},
	}, nil
}

// encodeBase64 packs the vector as little-endian float32, the layout OpenAI
// clients decode.
func encodeBase64(vec []float64) string {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

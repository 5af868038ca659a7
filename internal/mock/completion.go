package mock

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nulzo/openai-mock/pkg/api"
)

// DefaultCompletionMaxTokens mirrors the legacy endpoint's default cap.
const DefaultCompletionMaxTokens = 16

// Completion answers a validated legacy completion request with n choices.
func (s *Synthesizer) Completion(req *api.CompletionRequest) (resp *api.CompletionResponse, err error) {
	defer recoverInto(&err, "completion")

	prompt := req.Prompt.Text()
	maxTokens := DefaultCompletionMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	n := req.ChoiceCount()
	choices := make([]api.CompletionChoice, n)
	completionTokens := 0

	for i := range n {
		template := pick(s.completionPool, hashKey(prompt, strconv.Itoa(i)))
		text, reason := s.shape(template, req.Stop.Values(), maxTokens)
		completionTokens += s.usage.Estimate(text)

		offset := 0
		if req.Echo {
			offset = len(prompt)
		}

		choices[i] = api.CompletionChoice{
			Text:         text,
			Index:        i,
			FinishReason: reason,
		}
		if req.Logprobs != nil && *req.Logprobs > 0 {
			choices[i].Logprobs = fakeLogprobs(text, *req.Logprobs, offset)
		}
		if req.Echo {
			choices[i].Text = prompt + text
		}
	}

	return &api.CompletionResponse{
		ID:      s.ids.Next(KindCompletion),
		Object:  api.ObjectTextCompletion,
		Created: s.ids.Now(),
		Model:   req.Model,
		Choices: choices,
		Usage:   api.NewUsage(s.usage.Estimate(prompt), completionTokens),
	}, nil
}

// fakeLogprobs treats every word (with its leading whitespace) as a token and
// derives log probabilities from the token digest.
func fakeLogprobs(text string, alternatives, offset int) *api.CompletionLogprobs {
	lp := &api.CompletionLogprobs{
		Tokens:        []string{},
		TokenLogprobs: []float64{},
		TopLogprobs:   []map[string]float64{},
		TextOffset:    []int{},
	}

	for i, seg := range splitTokens(text) {
		token := text[seg[0]:seg[1]]
		logprob := -float64(hashKey(token, strconv.Itoa(i))%2000) / 1000

		top := map[string]float64{token: logprob}
		for j, alt := range alternativesFor(token) {
			if len(top) >= alternatives {
				break
			}
			if _, dup := top[alt]; dup {
				continue
			}
			top[alt] = logprob - 0.5*float64(j+1)
		}

		lp.Tokens = append(lp.Tokens, token)
		lp.TokenLogprobs = append(lp.TokenLogprobs, logprob)
		lp.TopLogprobs = append(lp.TopLogprobs, top)
		lp.TextOffset = append(lp.TextOffset, offset+seg[0])
	}
	return lp
}

// splitTokens returns [start,end) byte ranges of whitespace-led words.
func splitTokens(text string) [][2]int {
	var segs [][2]int
	start, inWord := 0, false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if space && inWord {
			segs = append(segs, [2]int{start, i})
			start = i
		}
		inWord = !space
	}
	if inWord {
		segs = append(segs, [2]int{start, len(text)})
	}
	return segs
}

func alternativesFor(token string) []string {
	word := strings.TrimLeftFunc(token, unicode.IsSpace)
	lead := token[:len(token)-len(word)]
	return []string{
		lead + strings.ToUpper(word),
		lead + word + "s",
		lead + "the",
		lead + "a",
		lead + strings.ToLower(word) + ",",
	}
}

package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptInput(t *testing.T) {
	var req CompletionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"prompt":"hello"}`), &req))
	assert.False(t, req.Prompt.IsList())
	assert.Equal(t, []string{"hello"}, req.Prompt.Values())

	require.NoError(t, json.Unmarshal([]byte(`{"prompt":["a","b"]}`), &req))
	assert.True(t, req.Prompt.IsList())
	assert.Equal(t, "a\nb", req.Prompt.Text())

	out, err := json.Marshal(PromptText("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(out))

	var union *UnionError
	err = json.Unmarshal([]byte(`{"prompt":{"x":1}}`), &req)
	require.True(t, errors.As(err, &union))
	assert.Equal(t, "prompt", union.Field)

	err = json.Unmarshal([]byte(`{"prompt":[1,2]}`), &req)
	assert.True(t, errors.As(err, &union))
}

func TestStopSequences(t *testing.T) {
	var req CompletionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"stop":"\n"}`), &req))
	assert.Equal(t, []string{"\n"}, req.Stop.Values())

	require.NoError(t, json.Unmarshal([]byte(`{"stop":["a","b"]}`), &req))
	assert.Equal(t, []string{"a", "b"}, req.Stop.Values())

	var empty CompletionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"stop":null}`), &empty))
	assert.Nil(t, empty.Stop.Values())

	out, err := json.Marshal(StopText("END"))
	require.NoError(t, err)
	assert.JSONEq(t, `"END"`, string(out))
}

func TestEmbeddingInput(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		units  []string
		tokens bool
		list   bool
	}{
		{"text", `"hello"`, []string{"hello"}, false, false},
		{"texts", `["a","b"]`, []string{"a", "b"}, false, true},
		{"empty list", `[]`, []string{}, false, true},
		{"tokens", `[1,2,3]`, []string{"1 2 3"}, true, false},
		{"token lists", `[[1,2],[3]]`, []string{"1 2", "3"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in EmbeddingInput
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &in))
			assert.Equal(t, tt.units, in.Units())
			assert.Equal(t, tt.tokens, in.IsTokens())
			assert.Equal(t, tt.list, in.IsList())

			out, err := json.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.raw, string(out))
		})
	}

	for _, raw := range []string{`42`, `{"a":1}`, `["a",1]`, `[[1],"a"]`, `[true]`} {
		var in EmbeddingInput
		var union *UnionError
		assert.True(t, errors.As(json.Unmarshal([]byte(raw), &in), &union), raw)
	}
}

func TestContent(t *testing.T) {
	var m ChatMessage
	require.NoError(t, json.Unmarshal([]byte(`{"role":"user","content":"hi"}`), &m))
	assert.Equal(t, "hi", m.Content.String())

	raw := `{"role":"user","content":[{"type":"text","text":"a"},{"type":"image_url"},{"type":"text","text":"b"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "a\nb", m.Content.String())

	var assistant ChatMessage
	require.NoError(t, json.Unmarshal([]byte(`{"role":"assistant","content":null}`), &assistant))
	assert.Empty(t, assistant.Content.String())
}

func TestToolChoice(t *testing.T) {
	tests := []struct {
		raw   string
		mode  ToolChoiceMode
		fn    string
		valid bool
	}{
		{`"auto"`, ToolChoiceAuto, "", true},
		{`"none"`, ToolChoiceNone, "", true},
		{`"required"`, ToolChoiceRequired, "", true},
		{`{"type":"function","function":{"name":"lookup"}}`, ToolChoiceFunction, "lookup", true},
		{`{"type":"function","function":{}}`, ToolChoiceFunction, "", false},
		{`"sometimes"`, "sometimes", "", false},
	}

	for _, tt := range tests {
		var tc ToolChoice
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &tc), tt.raw)
		assert.Equal(t, tt.mode, tc.Mode, tt.raw)
		assert.Equal(t, tt.fn, tc.Function, tt.raw)
		assert.Equal(t, tt.valid, tc.Valid(), tt.raw)
	}

	var tc ToolChoice
	var union *UnionError
	assert.True(t, errors.As(json.Unmarshal([]byte(`7`), &tc), &union))

	out, err := json.Marshal(NamedToolChoice("lookup"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"function","function":{"name":"lookup"}}`, string(out))
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnionError is returned when a string-or-list field carries a JSON value
// that matches none of its accepted shapes.
type UnionError struct {
	Field    string
	Expected string
}

func (e *UnionError) Error() string {
	return fmt.Sprintf("'%s' must be %s", e.Field, e.Expected)
}

func firstByte(data []byte) byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// --- Prompt ---

type promptKind uint8

const (
	promptUnset promptKind = iota
	promptText
	promptList
)

// PromptInput is the `prompt` union of a legacy completion: a single string
// or an ordered list of strings.
type PromptInput struct {
	kind   promptKind
	values []string
}

// PromptText builds a single-string prompt.
func PromptText(s string) PromptInput {
	return PromptInput{kind: promptText, values: []string{s}}
}

// PromptList builds a list prompt.
func PromptList(items ...string) PromptInput {
	return PromptInput{kind: promptList, values: append([]string{}, items...)}
}

// IsList reports whether the prompt was sent as an array.
func (p PromptInput) IsList() bool { return p.kind == promptList }

// Values is the normalized form every variant reduces to.
func (p PromptInput) Values() []string { return p.values }

// Text joins the prompt entries with newlines.
func (p PromptInput) Text() string { return strings.Join(p.values, "\n") }

func (p *PromptInput) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PromptText(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return &UnionError{Field: "prompt", Expected: "a string or an array of strings"}
		}
		*p = PromptInput{kind: promptList, values: items}
		return nil
	case 'n':
		*p = PromptInput{}
		return nil
	}
	return &UnionError{Field: "prompt", Expected: "a string or an array of strings"}
}

func (p PromptInput) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case promptText:
		return json.Marshal(p.values[0])
	case promptList:
		return json.Marshal(p.values)
	}
	return []byte("null"), nil
}

// --- Stop ---

// StopSequences is the `stop` union: a single string or up to four strings.
type StopSequences struct {
	single bool
	values []string
}

// StopText builds a single stop sequence.
func StopText(s string) *StopSequences {
	return &StopSequences{single: true, values: []string{s}}
}

// StopList builds a list of stop sequences.
func StopList(items ...string) *StopSequences {
	return &StopSequences{values: append([]string{}, items...)}
}

// Values returns the stop sequences; nil-safe.
func (s *StopSequences) Values() []string {
	if s == nil {
		return nil
	}
	return s.values
}

func (s *StopSequences) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StopSequences{single: true, values: []string{str}}
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return &UnionError{Field: "stop", Expected: "a string or an array of strings"}
		}
		*s = StopSequences{values: items}
		return nil
	}
	return &UnionError{Field: "stop", Expected: "a string or an array of strings"}
}

func (s StopSequences) MarshalJSON() ([]byte, error) {
	if s.single && len(s.values) == 1 {
		return json.Marshal(s.values[0])
	}
	return json.Marshal(s.values)
}

// --- Embedding input ---

type embeddingKind uint8

const (
	embeddingUnset embeddingKind = iota
	embeddingText
	embeddingTextList
	embeddingTokens
	embeddingTokenLists
)

// EmbeddingInput is the `input` union of an embedding request: a string, a
// list of strings, a token-id list or a list of token-id lists.
type EmbeddingInput struct {
	kind   embeddingKind
	texts  []string
	tokens [][]int
}

// EmbeddingText builds a single-string input.
func EmbeddingText(s string) EmbeddingInput {
	return EmbeddingInput{kind: embeddingText, texts: []string{s}}
}

// EmbeddingTexts builds a list-of-strings input.
func EmbeddingTexts(items ...string) EmbeddingInput {
	return EmbeddingInput{kind: embeddingTextList, texts: append([]string{}, items...)}
}

// EmbeddingTokens builds a single token-id list input.
func EmbeddingTokens(ids ...int) EmbeddingInput {
	return EmbeddingInput{kind: embeddingTokens, tokens: [][]int{append([]int{}, ids...)}}
}

// EmbeddingTokenLists builds a list-of-token-lists input.
func EmbeddingTokenLists(lists ...[]int) EmbeddingInput {
	return EmbeddingInput{kind: embeddingTokenLists, tokens: lists}
}

// IsTokens reports whether the input carries token ids rather than text.
func (e EmbeddingInput) IsTokens() bool {
	return e.kind == embeddingTokens || e.kind == embeddingTokenLists
}

// IsList reports whether the input was an array of units rather than a
// single string or a single token array.
func (e EmbeddingInput) IsList() bool {
	return e.kind == embeddingTextList || e.kind == embeddingTokenLists
}

// TokenLists returns the raw token-id units, or nil for text input.
func (e EmbeddingInput) TokenLists() [][]int { return e.tokens }

// Units normalizes every variant into ordered opaque text units. Token lists
// are rendered as space separated ids and are never decoded; an empty token
// list renders as an empty unit.
func (e EmbeddingInput) Units() []string {
	if !e.IsTokens() {
		return e.texts
	}
	units := make([]string, len(e.tokens))
	for i, ids := range e.tokens {
		parts := make([]string, len(ids))
		for j, id := range ids {
			parts[j] = strconv.Itoa(id)
		}
		units[i] = strings.Join(parts, " ")
	}
	return units
}

func (e *EmbeddingInput) UnmarshalJSON(data []byte) error {
	invalid := &UnionError{
		Field:    "input",
		Expected: "a string, an array of strings, an array of integers, or an array of integer arrays",
	}

	switch firstByte(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = EmbeddingText(s)
		return nil
	case 'n':
		*e = EmbeddingInput{}
		return nil
	case '[':
	default:
		return invalid
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return invalid
	}
	if len(raw) == 0 {
		*e = EmbeddingInput{kind: embeddingTextList, texts: []string{}}
		return nil
	}

	// the first element decides the variant, the rest must agree
	switch firstByte(raw[0]) {
	case '"':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return invalid
		}
		*e = EmbeddingInput{kind: embeddingTextList, texts: items}
	case '[':
		var lists [][]int
		if err := json.Unmarshal(data, &lists); err != nil {
			return invalid
		}
		*e = EmbeddingInput{kind: embeddingTokenLists, tokens: lists}
	default:
		var ids []int
		if err := json.Unmarshal(data, &ids); err != nil {
			return invalid
		}
		*e = EmbeddingInput{kind: embeddingTokens, tokens: [][]int{ids}}
	}
	return nil
}

func (e EmbeddingInput) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case embeddingText:
		return json.Marshal(e.texts[0])
	case embeddingTextList:
		return json.Marshal(e.texts)
	case embeddingTokens:
		return json.Marshal(e.tokens[0])
	case embeddingTokenLists:
		return json.Marshal(e.tokens)
	}
	return []byte("null"), nil
}

// --- Message content ---

// Content handles the union type: string | []ContentPart
type Content struct {
	Text  string
	Parts []ContentPart
}

// TextContent builds plain string content.
func TextContent(s string) Content { return Content{Text: s} }

// String flattens the content; text parts are joined with newlines.
func (c Content) String() string {
	if c.Parts == nil {
		return c.Text
	}
	texts := make([]string, 0, len(c.Parts))
	for _, p := range c.Parts {
		if p.Type == "text" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func (c *Content) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '"':
		return json.Unmarshal(data, &c.Text)
	case '[':
		return json.Unmarshal(data, &c.Parts)
	case 'n':
		return nil
	}
	return &UnionError{Field: "content", Expected: "a string or an array of content parts"}
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// --- Tool choice ---

// ToolChoiceMode is the resolved strategy of a tool_choice value.
type ToolChoiceMode string

const (
	ToolChoiceNone     ToolChoiceMode = "none"
	ToolChoiceAuto     ToolChoiceMode = "auto"
	ToolChoiceRequired ToolChoiceMode = "required"
	ToolChoiceFunction ToolChoiceMode = "function"
)

// ToolChoice is the `tool_choice` union: one of the string modes or an
// explicit function reference.
type ToolChoice struct {
	Mode     ToolChoiceMode
	Function string
	// raw keeps an unrecognised string mode so validation can report it
	raw string
}

// NamedToolChoice forces a call to the given function.
func NamedToolChoice(name string) *ToolChoice {
	return &ToolChoice{Mode: ToolChoiceFunction, Function: name}
}

// ModeToolChoice builds a string-mode tool choice.
func ModeToolChoice(mode ToolChoiceMode) *ToolChoice {
	return &ToolChoice{Mode: mode, raw: string(mode)}
}

// Valid reports whether the choice parsed into a known mode.
func (t *ToolChoice) Valid() bool {
	switch t.Mode {
	case ToolChoiceNone, ToolChoiceAuto, ToolChoiceRequired:
		return true
	case ToolChoiceFunction:
		return t.Function != ""
	}
	return false
}

// Raw returns the original string mode.
func (t *ToolChoice) Raw() string { return t.raw }

func (t *ToolChoice) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ToolChoice{Mode: ToolChoiceMode(s), raw: s}
		return nil
	case '{':
		var named struct {
			Type     string `json:"type"`
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		}
		if err := json.Unmarshal(data, &named); err != nil {
			return &UnionError{Field: "tool_choice", Expected: `"none", "auto", "required" or a function reference`}
		}
		*t = ToolChoice{Mode: ToolChoiceMode(named.Type), Function: named.Function.Name, raw: named.Type}
		return nil
	}
	return &UnionError{Field: "tool_choice", Expected: `"none", "auto", "required" or a function reference`}
}

func (t ToolChoice) MarshalJSON() ([]byte, error) {
	if t.Mode == ToolChoiceFunction {
		return json.Marshal(map[string]any{
			"type":     "function",
			"function": map[string]string{"name": t.Function},
		})
	}
	return json.Marshal(string(t.Mode))
}

package api

// Field order below is the order validation reports violations in.

// CompletionRequest is the body of POST /v1/completions.
type CompletionRequest struct {
	Model  string      `json:"model" validate:"required,nonblank"`
	Prompt PromptInput `json:"prompt" validate:"required,min=1,dive,nonblank"`

	MaxTokens   *int     `json:"max_tokens,omitempty" validate:"omitempty,min=1,max=4096"`
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,min=0,max=2"`
	TopP        *float64 `json:"top_p,omitempty" validate:"omitempty,min=0,max=1"`
	N           *int     `json:"n,omitempty" validate:"omitempty,min=1,max=20"`

	// accepted for compatibility, responses are never streamed
	Stream bool `json:"stream,omitempty"`

	Logprobs *int           `json:"logprobs,omitempty" validate:"omitempty,min=0,max=5"`
	Echo     bool           `json:"echo,omitempty"`
	Stop     *StopSequences `json:"stop,omitempty" validate:"omitempty,max=4"`

	PresencePenalty  *float64 `json:"presence_penalty,omitempty" validate:"omitempty,min=-2,max=2"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" validate:"omitempty,min=-2,max=2"`
	BestOf           *int     `json:"best_of,omitempty" validate:"omitempty,min=1,max=20"`

	LogitBias map[string]float64 `json:"logit_bias,omitempty"`
	User      string             `json:"user,omitempty"`
	Suffix    string             `json:"suffix,omitempty"`
	Seed      *int64             `json:"seed,omitempty"`
}

// ChoiceCount is the requested fan-out, defaulting to 1.
func (r *CompletionRequest) ChoiceCount() int {
	if r.N == nil {
		return 1
	}
	return *r.N
}

// ChatCompletionRequest is the body of POST /v1/chat/completions.
type ChatCompletionRequest struct {
	Model    string        `json:"model" validate:"required,nonblank"`
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`

	MaxTokens           *int     `json:"max_tokens,omitempty" validate:"omitempty,min=1,max=4096"`
	MaxCompletionTokens *int     `json:"max_completion_tokens,omitempty" validate:"omitempty,min=1,max=4096"`
	Temperature         *float64 `json:"temperature,omitempty" validate:"omitempty,min=0,max=2"`
	TopP                *float64 `json:"top_p,omitempty" validate:"omitempty,min=0,max=1"`
	N                   *int     `json:"n,omitempty" validate:"omitempty,min=1,max=20"`

	Stream bool           `json:"stream,omitempty"`
	Stop   *StopSequences `json:"stop,omitempty" validate:"omitempty,max=4"`

	PresencePenalty  *float64 `json:"presence_penalty,omitempty" validate:"omitempty,min=-2,max=2"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" validate:"omitempty,min=-2,max=2"`

	LogitBias map[string]float64 `json:"logit_bias,omitempty"`
	User      string             `json:"user,omitempty"`
	Seed      *int64             `json:"seed,omitempty"`

	// Tool calling
	Tools             []Tool      `json:"tools,omitempty" validate:"omitempty,max=128,dive"`
	ToolChoice        *ToolChoice `json:"tool_choice,omitempty"`
	ParallelToolCalls *bool       `json:"parallel_tool_calls,omitempty"`
}

// ChoiceCount is the requested fan-out, defaulting to 1.
func (r *ChatCompletionRequest) ChoiceCount() int {
	if r.N == nil {
		return 1
	}
	return *r.N
}

// CompletionCap is the upper bound on generated tokens; 0 means uncapped.
// max_completion_tokens takes precedence over the older max_tokens.
func (r *ChatCompletionRequest) CompletionCap() int {
	switch {
	case r.MaxCompletionTokens != nil:
		return *r.MaxCompletionTokens
	case r.MaxTokens != nil:
		return *r.MaxTokens
	}
	return 0
}

type ChatMessage struct {
	Role       Role       `json:"role" validate:"required,oneof=system user assistant tool"`
	Content    Content    `json:"content"` // string or []ContentPart
	Name       string     `json:"name,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"` // For assistant messages
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

type Tool struct {
	Type     string              `json:"type" validate:"required,eq=function"`
	Function FunctionDescription `json:"function"`
}

type FunctionDescription struct {
	Name        string         `json:"name" validate:"required,max=64"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"` // JSON Schema object
}

// EmbeddingRequest is the body of POST /v1/embeddings.
type EmbeddingRequest struct {
	Model          string         `json:"model" validate:"required,nonblank"`
	Input          EmbeddingInput `json:"input" validate:"required,min=1,dive,nonblank"`
	EncodingFormat string         `json:"encoding_format,omitempty" validate:"omitempty,oneof=float base64"`
	Dimensions     *int           `json:"dimensions,omitempty" validate:"omitempty,min=1,max=3072"`
	User           string         `json:"user,omitempty"`
}

const (
	EncodingFloat  = "float"
	EncodingBase64 = "base64"
)

package config

// DefaultModels is the model list served by /v1/models unless overridden.
func DefaultModels() []map[string]any {
	return []map[string]any{
		{"id": "gpt-4o", "owned_by": "openai", "created": 1715367049},
		{"id": "gpt-4o-mini", "owned_by": "openai", "created": 1721172741},
		{"id": "gpt-4-turbo", "owned_by": "openai", "created": 1712361441},
		{"id": "gpt-4", "owned_by": "openai", "created": 1687882411},
		{"id": "gpt-3.5-turbo", "owned_by": "openai", "created": 1677610602},
		{"id": "gpt-3.5-turbo-instruct", "owned_by": "system", "created": 1692901427},
		{"id": "text-embedding-ada-002", "owned_by": "openai-internal", "created": 1671217299},
		{"id": "text-embedding-3-small", "owned_by": "system", "created": 1705948997},
		{"id": "text-embedding-3-large", "owned_by": "system", "created": 1705953180},
	}
}

var DefaultCompletionPool = []string{
	"This is a mock completion generated for testing purposes.",
	"The quick brown fox jumps over the lazy dog, and the dog does not seem to mind at all.",
	"Here is a deterministic response that depends only on the prompt you sent.",
	"Mock servers make integration tests fast, cheap and repeatable.",
	"Once upon a time there was a language model that always answered the same way.",
}

var DefaultChatPool = []string{
	"Hello! I'm a mock assistant. How can I help you today?",
	"That's an interesting question. In a real deployment a model would answer it; here you get this placeholder instead.",
	"Sure, here is a short answer: the mock server received your message and replied deterministically.",
	"I understand. Let me know if there is anything else you would like to test.",
	"Thanks for your message! This response was generated without calling any external service.",
}

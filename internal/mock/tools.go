package mock

import (
	"encoding/json"
	"strings"

	"github.com/nulzo/openai-mock/pkg/api"
)

// planToolCalls decides which tools the reply calls; nil means a plain
// content reply.
//
//   - no tools or tool_choice "none": nil
//   - a named function: that tool
//   - "required": always at least one tool
//   - "auto" (the default when tools are present): digest of the last user
//     message and the tool names, even digests call
//
// A second distinct tool is added when more than one tool is declared,
// parallel_tool_calls is not false and a digest bit is set.
func planToolCalls(req *api.ChatCompletionRequest) []api.Tool {
	if len(req.Tools) == 0 {
		return nil
	}

	mode := api.ToolChoiceAuto
	if req.ToolChoice != nil {
		mode = req.ToolChoice.Mode
	}

	if mode == api.ToolChoiceFunction {
		for _, tool := range req.Tools {
			if tool.Function.Name == req.ToolChoice.Function {
				return []api.Tool{tool}
			}
		}
		return nil
	}

	names := make([]string, 0, len(req.Tools)+1)
	names = append(names, lastUserMessage(req.Messages))
	for _, tool := range req.Tools {
		names = append(names, tool.Function.Name)
	}
	h := hashKey(names...)

	switch mode {
	case api.ToolChoiceAuto:
		if h%2 != 0 {
			return nil
		}
	case api.ToolChoiceRequired:
	default:
		return nil
	}

	first := int((h >> 1) % uint64(len(req.Tools)))
	calls := []api.Tool{req.Tools[first]}

	parallel := req.ParallelToolCalls == nil || *req.ParallelToolCalls
	if parallel && len(req.Tools) > 1 && (h>>32)&1 == 1 {
		calls = append(calls, req.Tools[(first+1)%len(req.Tools)])
	}
	return calls
}

// placeholderArguments builds a JSON object holding the schema's required
// properties with placeholder values. Keys are emitted sorted.
func placeholderArguments(schema map[string]any) string {
	out, err := json.Marshal(placeholderObject(schema))
	if err != nil {
		return "{}"
	}
	return string(out)
}

func placeholderObject(schema map[string]any) map[string]any {
	obj := map[string]any{}
	props, _ := schema["properties"].(map[string]any)
	for _, name := range requiredNames(schema) {
		prop, _ := props[name].(map[string]any)
		obj[name] = placeholderValue(name, prop)
	}
	return obj
}

// requiredNames reads "required" from decoded JSON ([]any) or from schemas
// built in Go ([]string).
func requiredNames(schema map[string]any) []string {
	switch r := schema["required"].(type) {
	case []string:
		return r
	case []any:
		names := make([]string, 0, len(r))
		for _, v := range r {
			if name, ok := v.(string); ok {
				names = append(names, name)
			}
		}
		return names
	}
	return nil
}

func placeholderValue(name string, prop map[string]any) any {
	switch enum := prop["enum"].(type) {
	case []any:
		if len(enum) > 0 {
			return enum[0]
		}
	case []string:
		if len(enum) > 0 {
			return enum[0]
		}
	}

	switch schemaType(prop) {
	case "integer":
		return 1
	case "number":
		return 1.5
	case "boolean":
		return true
	case "array":
		return []any{}
	case "object":
		return placeholderObject(prop)
	case "null":
		return nil
	}
	return "example_" + strings.ToLower(name)
}

// schemaType resolves "type", which may be a string or a list like
// ["string", "null"].
func schemaType(prop map[string]any) string {
	switch t := prop["type"].(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	if _, ok := prop["properties"]; ok {
		return "object"
	}
	return "string"
}

package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nulzo/openai-mock/pkg/api"
)

func completionRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.CompletionRequest)

	if req.BestOf != nil && *req.BestOf < req.ChoiceCount() {
		sl.ReportError(req.BestOf, "best_of", "BestOf", "best_of", "")
	}
}

func chatRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.ChatCompletionRequest)

	tc := req.ToolChoice
	if tc == nil {
		return
	}

	switch {
	case !tc.Valid():
		sl.ReportError(tc, "tool_choice", "ToolChoice", "tool_choice", tc.Raw())
	case tc.Mode == api.ToolChoiceRequired || tc.Mode == api.ToolChoiceFunction:
		if len(req.Tools) == 0 {
			sl.ReportError(tc, "tool_choice", "ToolChoice", "tool_choice_tools", "")
			return
		}
		if tc.Mode == api.ToolChoiceFunction && !declares(req.Tools, tc.Function) {
			sl.ReportError(tc, "tool_choice", "ToolChoice", "tool_choice_unknown", tc.Function)
		}
	}
}

func declares(tools []api.Tool, name string) bool {
	for _, tool := range tools {
		if tool.Function.Name == name {
			return true
		}
	}
	return false
}

// messageRules checks the role-dependent fields of one chat message.
func messageRules(sl validator.StructLevel) {
	m := sl.Current().Interface().(api.ChatMessage)
	empty := strings.TrimSpace(m.Content.String()) == ""

	switch m.Role {
	case api.RoleSystem, api.RoleUser:
		if empty {
			sl.ReportError(m.Content, "content", "Content", "content_required", string(m.Role))
		}
	case api.RoleAssistant:
		if empty && len(m.ToolCalls) == 0 {
			sl.ReportError(m.Content, "content", "Content", "content_or_tool_calls", "")
		}
	case api.RoleTool:
		if empty {
			sl.ReportError(m.Content, "content", "Content", "content_required", string(m.Role))
			return
		}
		if m.ToolCallID == "" {
			sl.ReportError(m.ToolCallID, "tool_call_id", "ToolCallID", "required", "")
		}
	}
}

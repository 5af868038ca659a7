package mock

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/nulzo/openai-mock/pkg/api"
)

// per-message framing overhead, as OpenAI counts chat prompts
const (
	messageOverhead = 4
	replyPriming    = 3
)

// Chat answers a validated chat completion request. Depending on tools and
// tool_choice each choice is either a tool-call message or assistant text.
func (s *Synthesizer) Chat(req *api.ChatCompletionRequest) (resp *api.ChatCompletionResponse, err error) {
	defer recoverInto(&err, "chat")

	calls := planToolCalls(req)
	transcript := transcriptKey(req.Messages)

	n := req.ChoiceCount()
	choices := make([]api.ChatChoice, n)
	completionTokens := 0

	for i := range n {
		if len(calls) > 0 {
			toolCalls := make([]api.ToolCall, len(calls))
			for j, tool := range calls {
				args := placeholderArguments(tool.Function.Parameters)
				toolCalls[j] = api.ToolCall{
					ID:   s.ids.Next(KindToolCall),
					Type: "function",
					Function: api.FunctionCall{
						Name:      tool.Function.Name,
						Arguments: args,
					},
				}
				completionTokens += s.usage.Estimate(tool.Function.Name + " " + args)
			}

			choices[i] = api.ChatChoice{
				Index:        i,
				Message:      api.ResponseMessage{Role: api.RoleAssistant, ToolCalls: toolCalls},
				FinishReason: api.FinishToolCalls,
			}
			continue
		}

		template := pick(s.chatPool, hashKey(transcript, strconv.Itoa(i)))
		text, reason := s.shape(template, req.Stop.Values(), req.CompletionCap())
		completionTokens += s.usage.Estimate(text)

		choices[i] = api.ChatChoice{
			Index:        i,
			Message:      api.ResponseMessage{Role: api.RoleAssistant, Content: &text},
			FinishReason: reason,
		}
	}

	return &api.ChatCompletionResponse{
		ID:                s.ids.Next(KindChat),
		Object:            api.ObjectChatCompletion,
		Created:           s.ids.Now(),
		Model:             req.Model,
		SystemFingerprint: fingerprint(req.Model),
		Choices:           choices,
		Usage:             api.NewUsage(s.promptTokens(req.Messages), completionTokens),
	}, nil
}

func (s *Synthesizer) promptTokens(messages []api.ChatMessage) int {
	total := replyPriming
	for _, m := range messages {
		total += messageOverhead + s.usage.Estimate(m.Content.String())
		for _, call := range m.ToolCalls {
			total += s.usage.Estimate(call.Function.Name + " " + call.Function.Arguments)
		}
	}
	return total
}

// transcriptKey serializes everything in the message list that can change
// the reply.
func transcriptKey(messages []api.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(string(m.Role))
		b.WriteByte(0)
		b.WriteString(m.Name)
		b.WriteByte(0)
		b.WriteString(m.Content.String())
		b.WriteByte(0)
		b.WriteString(m.ToolCallID)
		for _, call := range m.ToolCalls {
			b.WriteByte(0)
			b.WriteString(call.Function.Name)
			b.WriteByte(0)
			b.WriteString(call.Function.Arguments)
		}
		b.WriteByte(1)
	}
	return b.String()
}

func lastUserMessage(messages []api.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == api.RoleUser {
			return messages[i].Content.String()
		}
	}
	return ""
}

// fingerprint is a stable per-model system_fingerprint.
func fingerprint(model string) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], hashKey(model))
	return "fp_" + hex.EncodeToString(buf[:])[:10]
}

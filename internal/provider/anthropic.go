package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/loupe-ai/loupe/internal/conversation"
	"github.com/loupe-ai/loupe/tools"
)

// DefaultAnthropicModel is used when a bare "claude" model name is given.
const DefaultAnthropicModel = anthropic.ModelClaude3_7SonnetLatest

const anthropicMaxTokens = 4096

// Anthropic completes transcripts through the Messages API with tool_use
// blocks.
type Anthropic struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropic constructs an Anthropic reasoner. Extra request options are
// mainly for tests (custom HTTP transport, base URL).
func NewAnthropic(apiKey, model string, opts ...option.RequestOption) (*Anthropic, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}
	m := anthropic.Model(model)
	if model == "" || model == "claude" {
		m = DefaultAnthropicModel
	}
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	c := anthropic.NewClient(all...)
	return &Anthropic{client: &c, model: m}, nil
}

func (p *Anthropic) Complete(ctx context.Context, transcript []conversation.Message, defs []tools.ToolDefinition) (conversation.Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: int64(anthropicMaxTokens),
		Tools:     anthropicTools(defs),
	}
	for _, m := range transcript {
		switch m := m.(type) {
		case conversation.SystemMessage:
			params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
		case conversation.UserMessage:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case conversation.AssistantMessage:
			blocks := make([]anthropic.ContentBlockParamUnion, 0, len(m.ToolCalls)+1)
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, c := range m.ToolCalls {
				blocks = append(blocks, anthropic.ContentBlockParamUnion{OfToolUse: &anthropic.ToolUseBlockParam{
					ID:    c.ID,
					Name:  c.Name,
					Input: json.RawMessage(c.Arguments),
				}})
			}
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(blocks...))
		case conversation.ToolResultMessage:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(m.CallID, m.Content, false)))
		}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return conversation.Completion{}, &Error{Provider: "anthropic", Op: "messages", Err: err}
	}

	var out conversation.Completion
	var text []string
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			text = append(text, v.Text)
		case anthropic.ToolUseBlock:
			out.ToolCalls = append(out.ToolCalls, conversation.ToolCall{
				ID:        v.ID,
				Name:      v.Name,
				Arguments: json.RawMessage(v.JSON.Input.Raw()),
			})
		}
	}
	out.Content = strings.Join(text, "\n")
	return out, nil
}

func anthropicTools(defs []tools.ToolDefinition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, d := range defs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        d.Name,
			Description: anthropic.String(d.Description),
			InputSchema: anthropic.ToolInputSchemaParam{Properties: d.InputSchema.Properties},
		}})
	}
	return out
}

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/loupe-ai/loupe/internal/conversation"
	"github.com/loupe-ai/loupe/tools"
)

// DefaultOpenAIModel is used when no model is selected on the command line.
const DefaultOpenAIModel = "gpt-4o"

// OpenAI completes transcripts through the chat completions API with
// function calling.
type OpenAI struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAI constructs an OpenAI reasoner. Extra request options are mainly
// for tests (custom HTTP transport, base URL).
func NewOpenAI(apiKey, model string, opts ...option.RequestOption) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAI{client: openai.NewClient(all...), model: openai.ChatModel(model)}, nil
}

func (p *OpenAI) Complete(ctx context.Context, transcript []conversation.Message, defs []tools.ToolDefinition) (conversation.Completion, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(transcript))
	for _, m := range transcript {
		switch m := m.(type) {
		case conversation.SystemMessage:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case conversation.UserMessage:
			msgs = append(msgs, openai.UserMessage(m.Content))
		case conversation.AssistantMessage:
			msgs = append(msgs, assistantParam(m))
		case conversation.ToolResultMessage:
			msgs = append(msgs, openai.ToolMessage(m.Content, m.CallID))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    p.model,
		Messages: msgs,
	}
	toolParams, err := chatTools(defs)
	if err != nil {
		return conversation.Completion{}, &Error{Provider: "openai", Op: "encode tools", Err: err}
	}
	if len(toolParams) > 0 {
		params.Tools = toolParams
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return conversation.Completion{}, &Error{Provider: "openai", Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return conversation.Completion{}, &Error{Provider: "openai", Op: "chat completion", Err: errors.New("response contains no choices")}
	}

	msg := resp.Choices[0].Message
	out := conversation.Completion{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, conversation.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}
	return out, nil
}

// assistantParam rebuilds an assistant turn, including any tool calls it
// issued. The calling turn must be resent verbatim so the provider accepts
// the tool results that follow it.
func assistantParam(m conversation.AssistantMessage) openai.ChatCompletionMessageParamUnion {
	if len(m.ToolCalls) == 0 {
		return openai.AssistantMessage(m.Content)
	}
	p := openai.ChatCompletionAssistantMessageParam{}
	if m.Content != "" {
		p.Content.OfString = openai.String(m.Content)
	}
	for _, c := range m.ToolCalls {
		p.ToolCalls = append(p.ToolCalls, openai.ChatCompletionMessageToolCallParam{
			ID: c.ID,
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      c.Name,
				Arguments: string(c.Arguments),
			},
		})
	}
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &p}
}

func chatTools(defs []tools.ToolDefinition) ([]openai.ChatCompletionToolParam, error) {
	out := make([]openai.ChatCompletionToolParam, 0, len(defs))
	for _, d := range defs {
		params, err := schemaParameters(d.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("schema for %s: %w", d.Name, err)
		}
		out = append(out, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        d.Name,
				Description: openai.String(d.Description),
				Parameters:  openai.FunctionParameters(params),
			},
		})
	}
	return out, nil
}

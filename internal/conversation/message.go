package conversation

import "encoding/json"

// Message is one entry in a run's transcript. The concrete types below are
// the only implementations; providers switch over them exhaustively when
// translating to their wire format.
type Message interface {
	message()
}

// SystemMessage carries the fixed system instruction seeded at run start.
type SystemMessage struct {
	Content string
}

// UserMessage carries the user's question.
type UserMessage struct {
	Content string
}

// AssistantMessage is a reasoning-side turn. When ToolCalls is non-empty the
// assistant is requesting tool execution; Content may still carry text.
type AssistantMessage struct {
	Content   string
	ToolCalls []ToolCall
}

// ToolResultMessage answers one ToolCall. CallID references the call it
// answers; a ToolResultMessage must never precede the AssistantMessage that
// issued that call.
type ToolResultMessage struct {
	CallID  string
	Content string
}

func (SystemMessage) message()     {}
func (UserMessage) message()       {}
func (AssistantMessage) message()  {}
func (ToolResultMessage) message() {}

// ToolCall is a single tool invocation requested by the reasoning provider.
// ID is unique within its batch; Arguments is the raw JSON payload, passed
// through untouched to the tool implementation.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolOutcome is the result of executing one ToolCall, keyed by CallID so it
// can be matched back regardless of completion order.
type ToolOutcome struct {
	CallID  string
	Content string
}

// Completion is a single reasoning-provider response: either one or more
// requested tool calls, or plain final content.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/loupe-ai/loupe/internal/conversation"
	"github.com/loupe-ai/loupe/internal/telemetry"
	"github.com/loupe-ai/loupe/tools"
)

const defaultMaxTurns = 16

// Reasoner is the reasoning service consumed by the agent: given the
// transcript so far and the declared tools, it returns either requested tool
// calls or final content.
type Reasoner interface {
	Complete(ctx context.Context, transcript []conversation.Message, defs []tools.ToolDefinition) (conversation.Completion, error)
}

// Agent drives the research loop. It owns the transcript and step log for
// the duration of one Run call; nothing is shared across runs.
type Agent struct {
	reasoner Reasoner
	executor *Executor
	maxTurns int
	debug    bool
}

// Option configures an Agent.
type Option func(*Agent)

// WithMaxTurns caps reasoning turns per run. Values <= 0 are ignored.
func WithMaxTurns(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxTurns = n
		}
	}
}

// WithDebug enables debug logging of turns and tool calls to stdout.
func WithDebug(enabled bool) Option {
	return func(a *Agent) { a.debug = enabled }
}

// New constructs an Agent with the given reasoner and tool set.
func New(reasoner Reasoner, defs []tools.ToolDefinition, opts ...Option) (*Agent, error) {
	if reasoner == nil {
		return nil, errors.New("agent: reasoner is required")
	}
	a := &Agent{
		reasoner: reasoner,
		executor: NewExecutor(defs),
		maxTurns: defaultMaxTurns,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Run answers one question. It loops until the reasoner stops requesting
// tools, then returns the answer plus the ordered step trace. A reasoner
// failure aborts the run; individual tool failures do not (they degrade the
// affected outcome only).
func (a *Agent) Run(ctx context.Context, question string) (conversation.RunResult, error) {
	transcript := []conversation.Message{
		conversation.SystemMessage{Content: systemPrompt},
		conversation.UserMessage{Content: question},
	}
	var steps []conversation.Step

	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	ctx = telemetry.WithRunID(ctx, runID)
	telemetry.EmitLocalFeatures(ctx, "question", question)

	for turn := 1; turn <= a.maxTurns; turn++ {
		if a.debug {
			fmt.Printf("[DEBUG] turn %d: requesting completion\n", turn)
		}
		comp, err := a.reasoner.Complete(ctx, transcript, a.executor.Tools())
		if err != nil {
			return conversation.RunResult{}, fmt.Errorf("reasoning failed for %q: %w", question, err)
		}
		telemetry.Emit("turn_completed", map[string]any{
			"run_id":     runID,
			"turn":       turn,
			"tool_calls": len(comp.ToolCalls),
		})

		if len(comp.ToolCalls) == 0 {
			answer := strings.TrimSpace(comp.Content)
			steps = append(steps, conversation.Step{Type: conversation.StepFinalAnswer, Content: answer})
			telemetry.EmitLocalFeatures(ctx, "answer", answer)
			telemetry.Emit("run_finished", map[string]any{
				"run_id": runID,
				"turns":  turn,
				"steps":  len(steps),
			})
			return conversation.RunResult{Question: question, Answer: answer, Steps: steps}, nil
		}

		// The assistant message carrying the calls must enter the transcript
		// before any execution or result: providers reject tool results whose
		// calling turn is absent.
		transcript = append(transcript, conversation.AssistantMessage{
			Content:   comp.Content,
			ToolCalls: comp.ToolCalls,
		})
		for _, c := range comp.ToolCalls {
			steps = append(steps, conversation.Step{Type: conversation.StepToolCall, Query: queryOf(c)})
			if a.debug {
				fmt.Printf("[DEBUG] tool call %s: %s(%s)\n", c.ID, c.Name, queryOf(c))
			}
		}

		outcomes := a.executor.Execute(ctx, comp.ToolCalls)
		for _, o := range outcomes {
			steps = append(steps, conversation.Step{Type: conversation.StepToolResult, Content: o.Content})
			transcript = append(transcript, conversation.ToolResultMessage{CallID: o.CallID, Content: o.Content})
		}
	}

	return conversation.RunResult{}, &TurnLimitError{Turns: a.maxTurns, Question: question}
}

// queryOf extracts the query argument for the trace; unknown argument shapes
// fall back to the raw payload.
func queryOf(c conversation.ToolCall) string {
	var in struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(c.Arguments, &in); err == nil && in.Query != "" {
		return in.Query
	}
	return string(c.Arguments)
}

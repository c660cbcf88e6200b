package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loupe-ai/loupe/internal/conversation"
	"github.com/loupe-ai/loupe/internal/telemetry"
	"github.com/loupe-ai/loupe/tools"
)

// Executor runs tool call batches against the registered tool definitions.
type Executor struct {
	defs []tools.ToolDefinition
}

func NewExecutor(defs []tools.ToolDefinition) *Executor {
	return &Executor{defs: defs}
}

// Tools returns the definitions the executor dispatches to, in declaration
// order, for presenting the tool schema to the reasoner.
func (e *Executor) Tools() []tools.ToolDefinition { return e.defs }

// Execute dispatches every call in the batch concurrently and returns one
// outcome per call in the calls' positional order, regardless of completion
// order. Each goroutine writes only its own index slot; the control thread
// reads the slots after Wait, so no lock is needed.
func (e *Executor) Execute(ctx context.Context, calls []conversation.ToolCall) []conversation.ToolOutcome {
	outcomes := make([]conversation.ToolOutcome, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call conversation.ToolCall) {
			defer wg.Done()
			outcomes[i] = conversation.ToolOutcome{CallID: call.ID, Content: e.execOne(ctx, call)}
		}(i, call)
	}
	wg.Wait()
	return outcomes
}

// execOne resolves a single call. Failures never escape as errors: the
// outcome content carries the failure text instead, keeping the order
// contract intact for the rest of the batch.
func (e *Executor) execOne(ctx context.Context, call conversation.ToolCall) string {
	var def *tools.ToolDefinition
	for i := range e.defs {
		if e.defs[i].Name == call.Name {
			def = &e.defs[i]
			break
		}
	}

	runID, _ := telemetry.RunIDFromContext(ctx)

	// Emit a tool_exec event without raw payloads.
	emit := func(durationMs int64, outputSize int, errStr string) {
		fields := map[string]any{
			"run_id":      runID,
			"tool_name":   call.Name,
			"duration_ms": durationMs,
			"input_size":  len(call.Arguments),
			"output_size": outputSize,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	start := time.Now()
	if def == nil {
		emit(time.Since(start).Milliseconds(), 0, "tool not found")
		return fmt.Sprintf("tool %q is not available", call.Name)
	}

	out, err := def.Function(ctx, call.Arguments)
	if err != nil {
		emit(time.Since(start).Milliseconds(), 0, "tool error")
		return fmt.Sprintf("tool %s failed: %v", call.Name, err)
	}
	emit(time.Since(start).Milliseconds(), len(out), "")
	return out
}

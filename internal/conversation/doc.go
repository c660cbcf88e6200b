// Package conversation defines the data model shared across the agent:
// transcript messages, tool calls and outcomes, trace steps, and the
// RunResult produced at the end of a run.
//
// Invariants:
//   - A transcript only ever grows; it is never reordered or truncated.
//   - A ToolResultMessage never appears before the AssistantMessage whose
//     ToolCall it answers.
package conversation

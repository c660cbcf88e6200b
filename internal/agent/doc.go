// Package agent drives the turn loop between a reasoning provider and the
// tool executor.
//
// Invariants:
//   - The assistant message carrying a batch of tool calls precedes every
//     tool result answering that batch in the transcript.
//   - Tool outcomes re-enter the transcript in call order, never completion
//     order.
//   - A single control goroutine owns the transcript and step log; executor
//     workers report back only through their return value.
//
// Flow:
//
//	system+user -> assistant(tool calls) -> tool results -> ... -> assistant(answer)
package agent

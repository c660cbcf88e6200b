// Package trace persists run results.
//
// Persistence model:
//   - The whole RunResult (question, answer, ordered steps) is written as
//     one indented JSON document; nothing else is stored.
//   - Step order in the file is the order events became observable in the run.
package trace

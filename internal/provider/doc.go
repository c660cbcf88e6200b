// Package provider implements the reasoning side of the loop: it translates
// the neutral transcript into each vendor's wire format, declares the tool
// schema, and returns either requested tool calls or final content.
//
// The orchestrator is the only place ordering semantics are enforced; the
// providers here are stateless per call.
package provider

// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - search_web: query a search backend and format the top snippets.
//   - Invariants: a handler error degrades that one call's outcome; it never
//     aborts the rest of the batch.
package tools

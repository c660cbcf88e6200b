package tools

// defaultTopN is the fallback result count when the caller passes <= 0.
const defaultTopN = 10

// Registry returns all tool definitions wired for the agent. Adding a tool
// means appending its definition here; the executor dispatches by name.
func Registry(s Searcher, topN int) []ToolDefinition {
	return []ToolDefinition{SearchWeb(s, topN)}
}

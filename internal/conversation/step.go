package conversation

// StepType discriminates trace records. The literals match the persisted
// trace format, so changing them breaks saved traces.
type StepType string

const (
	// StepToolCall records a search_web (or other tool) invocation being issued.
	StepToolCall StepType = "tool_call"
	// StepToolResult records one tool outcome re-entering the transcript.
	StepToolResult StepType = "tool_result"
	// StepFinalAnswer records the terminal assistant answer.
	StepFinalAnswer StepType = "assistant_answer"
)

// Step is an immutable trace record of one observable event in a run.
// Query is set for tool_call steps, Content for the other two.
type Step struct {
	Type    StepType `json:"type"`
	Query   string   `json:"query,omitempty"`
	Content string   `json:"content,omitempty"`
}

// RunResult is the terminal output of one orchestration run.
type RunResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Steps    []Step `json:"steps"`
}

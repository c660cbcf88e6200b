package agent

import "fmt"

// TurnLimitError reports a run that hit the configured turn cap while the
// reasoner was still requesting tools.
type TurnLimitError struct {
	Turns    int
	Question string
}

func (e *TurnLimitError) Error() string {
	return fmt.Sprintf("no final answer after %d turns for %q", e.Turns, e.Question)
}

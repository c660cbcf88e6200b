package trace

import (
	"encoding/json"
	"os"

	"github.com/loupe-ai/loupe/internal/conversation"
)

// Save writes a run's full trace as indented JSON.
func Save(path string, res conversation.RunResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load reads a trace written by Save. The result is field-for-field equal to
// what was saved.
func Load(path string) (conversation.RunResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return conversation.RunResult{}, err
	}
	var res conversation.RunResult
	if err := json.Unmarshal(b, &res); err != nil {
		return conversation.RunResult{}, err
	}
	return res, nil
}

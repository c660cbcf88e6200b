package telemetry

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Features holds basic local text features derived from an input string.
// Only these counts are emitted; raw text never reaches the event log.
type Features struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// CountFeatures computes byte, rune, word, and line counts for the input.
func CountFeatures(s string) Features {
	return Features{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
		Lines: countLines(s),
	}
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}

// EmitLocalFeatures emits text features for one named field (e.g. "question"
// or "answer") of the current run. Gated on calibration mode so routine runs
// stay quiet.
func EmitLocalFeatures(ctx context.Context, field, text string) {
	if !(CalibrationModeEnabled() && ObserveEnabled()) {
		return
	}
	runID, _ := RunIDFromContext(ctx)
	f := CountFeatures(text)
	Emit("local_features", map[string]any{
		"run_id":           runID,
		"features_version": "1",
		field: map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}

package telemetry

import (
	"os"
)

var (
	calibrationModeEnabled bool
	observeEnabled         bool
)

func init() {
	// Read once at process start. Mid-run environment changes have no effect
	// (tests may still force observation on via the env override below).
	calibrationModeEnabled = os.Getenv("LOUPE_CALIBRATION_MODE") == "1"

	// Observe: default to on when calibration=1 and LOUPE_OBSERVE_JSON is
	// unset; honour explicit 0/1.
	if v, ok := os.LookupEnv("LOUPE_OBSERVE_JSON"); ok {
		observeEnabled = (v == "1")
	} else {
		observeEnabled = calibrationModeEnabled
	}
}

// CalibrationModeEnabled reports whether calibration mode was enabled at startup.
func CalibrationModeEnabled() bool { return calibrationModeEnabled }

// ObserveEnabled reports whether JSONL emission is enabled, considering
// calibration defaults.
func ObserveEnabled() bool {
	// Preserve startup-evaluated default, but allow tests to enable mid-run
	// via env override.
	if os.Getenv("LOUPE_OBSERVE_JSON") == "1" {
		return true
	}
	return observeEnabled
}

package fuzzyac

import (
	"strings"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "BeamWidth", Message: "must be positive"}
	msg := err.Error()
	if !strings.Contains(msg, "BeamWidth") || !strings.Contains(msg, "must be positive") {
		t.Errorf("ConfigError.Error() = %q, want it to mention field and message", msg)
	}
}

func TestPatternErrorMessage(t *testing.T) {
	err := &PatternError{Index: 2, Pattern: "cat", Message: "weight must be in (0,1]"}
	msg := err.Error()
	if !strings.Contains(msg, "2") || !strings.Contains(msg, "cat") {
		t.Errorf("PatternError.Error() = %q, want it to mention index and pattern", msg)
	}
}

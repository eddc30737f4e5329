package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{" INFO ", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Debug("hidden")
	l.Warn("shown", "drug", "Amoxicillin")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "Amoxicillin") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "session=") {
		t.Errorf("session field missing: %q", out)
	}
}

func TestSessionID(t *testing.T) {
	id := SessionID()
	if len(id) != 8 {
		t.Errorf("SessionID() = %q, want 8 hex chars", id)
	}
	if id == SessionID() {
		t.Error("session ids should differ between calls")
	}
}

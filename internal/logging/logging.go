package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ParseLevel maps a config value to a log level. Unknown or empty values
// fall back to warn, which keeps the interactive prompts uncluttered.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// New returns a logger writing to w, tagged with a short id for this run.
func New(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Prefix:          "rxcalc",
		ReportTimestamp: true,
	})
	return l.With("session", SessionID())
}

// SessionID returns a short random identifier for log correlation.
func SessionID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/anomredux/rxcalc/internal/i18n"
)

const dateLayout = "2006-01-02"

// FileName returns the summary file name for the local date of now.
// Runs on the same day share a name, so a later save overwrites an earlier one.
func FileName(now time.Time) string {
	return "prescription_summary_" + now.Format(dateLayout) + ".txt"
}

// WriteText writes the plain text summary layout used for saved files.
func WriteText(w io.Writer, s *domain.Session, date time.Time) error {
	rule := strings.Repeat("=", 60)
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	sb.WriteString("        " + i18n.T("summary_title") + "\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(i18n.Tf("date_line", date.Format(dateLayout)) + "\n")
	sb.WriteString(i18n.Tf("count_line", s.Len()) + "\n")
	sb.WriteString("\n")

	for i, p := range s.Prescriptions() {
		fmt.Fprintf(&sb, "#%d. %s\n", i+1, p.Label())
		for _, line := range Fields(p) {
			sb.WriteString("    " + line + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(rule + "\n")
	sb.WriteString(i18n.Tf("grand_total_line", Money(s.GrandTotal())) + "\n")
	sb.WriteString(rule + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Save writes the session summary to dir and returns the path written.
// An existing file with the same name is replaced.
func Save(dir string, s *domain.Session, now time.Time) (string, error) {
	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("open summary file: %w", err)
	}
	if err := WriteText(f, s, now); err != nil {
		f.Close()
		return "", fmt.Errorf("write summary file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close summary file: %w", err)
	}
	return path, nil
}

// Location returns the absolute form of a saved summary path.
func Location(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

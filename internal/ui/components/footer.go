package components

import "github.com/anomredux/rxcalc/internal/theme"

// HelpFooter renders muted key help with standard indentation.
func HelpFooter(text string) string {
	return theme.MutedStyle.Render("  " + text)
}

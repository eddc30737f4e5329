package components

import (
	"strings"

	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Card boxes a titled list of lines with a rounded border.
type Card struct {
	Title string // pre-styled
	Lines []string
	Width int // total outer width; 0 sizes to content
}

var cardStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.ColorBorder).
	Padding(0, 1)

func (c Card) Render() string {
	body := strings.Join(c.Lines, "\n")
	if c.Title != "" {
		body = c.Title + "\n" + body
	}
	style := cardStyle
	if c.Width > 0 {
		// Width includes padding but not the border.
		style = style.Width(c.Width - 2)
	}
	return style.Render(body)
}

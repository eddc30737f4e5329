package components

import (
	"strings"

	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// StatusBar renders a separator and the running session totals.
type StatusBar struct {
	Width int
	Count int
	Total decimal.Decimal
}

func (s StatusBar) Render() string {
	sep := theme.MutedStyle.Render(strings.Repeat("─", max(s.Width, 1)))
	count := theme.LabelStyle.Render(i18n.Tf("session_count", s.Count))
	total := theme.MoneyStyle.Render(FormatMoney(s.Total))
	line := lipgloss.JoinHorizontal(lipgloss.Top, "  ", count, theme.MutedStyle.Render("  •  "), total)
	return sep + "\n" + line
}

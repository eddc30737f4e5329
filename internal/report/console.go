package report

import (
	"fmt"
	"strings"

	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/theme"
)

// Console renders the end-of-session summary for the terminal: the count,
// every prescription in entry order and the grand total.
func Console(s *domain.Session) string {
	var sb strings.Builder
	sb.WriteString(theme.Title(i18n.T("summary_title")))
	sb.WriteString("\n\n")
	sb.WriteString(theme.HeaderStyle.Render(i18n.Tf("count_line", s.Len())))
	sb.WriteString("\n\n")

	for i, p := range s.Prescriptions() {
		fmt.Fprintf(&sb, "%s %s\n", theme.LabelStyle.Render(fmt.Sprintf("#%d.", i+1)), theme.HeaderStyle.Render(p.Label()))
		for _, line := range Fields(p) {
			sb.WriteString("    ")
			sb.WriteString(theme.BodyStyle.Render(line))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Rule())
	sb.WriteString("\n")
	sb.WriteString(theme.MoneyStyle.Render(i18n.Tf("grand_total_line", Money(s.GrandTotal()))))
	sb.WriteString("\n")
	sb.WriteString(theme.Rule())
	return sb.String()
}

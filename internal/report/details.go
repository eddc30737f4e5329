package report

import (
	"strings"

	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/shopspring/decimal"
)

// Money formats an amount with exactly two decimal places, no currency sign.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Fields returns the labelled lines describing one prescription, without
// the drug line: sig, quantity, days supply and cost.
func Fields(p domain.Prescription) []string {
	return []string{
		i18n.Tf("sig_line", p.Sig),
		i18n.Tf("quantity_line", p.Quantity),
		i18n.Tf("days_line", p.DaysSupply),
		i18n.Tf("cost_line", Money(p.Cost)),
	}
}

// Details renders the block echoed after a prescription is recorded.
func Details(p domain.Prescription) string {
	var sb strings.Builder
	sb.WriteString(theme.Title(i18n.T("details_title")))
	sb.WriteString("\n")
	sb.WriteString(theme.HeaderStyle.Render(i18n.Tf("drug_line", p.Label())))
	sb.WriteString("\n")
	for _, line := range Fields(p) {
		sb.WriteString(theme.BodyStyle.Render(line))
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Rule())
	return sb.String()
}

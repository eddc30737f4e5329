package console

import (
	"strings"

	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/theme"
)

// Banner returns the startup text listing what the calculator derives.
func Banner() string {
	var sb strings.Builder
	sb.WriteString(theme.Title(i18n.T("app_title")))
	sb.WriteString("\n\n")
	sb.WriteString(theme.BodyStyle.Render(i18n.T("app_intro")))
	sb.WriteString("\n")
	for _, key := range []string{"feature_quantity", "feature_sig", "feature_days", "feature_cost"} {
		sb.WriteString("  ")
		sb.WriteString(theme.AccentStyle.Render("•"))
		sb.WriteString(" ")
		sb.WriteString(theme.BodyStyle.Render(i18n.T(key)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(theme.MutedStyle.Render(i18n.T("done_hint")))
	sb.WriteString("\n")
	sb.WriteString(theme.Rule())
	return sb.String()
}

package ui

import (
	"strings"

	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/report"
	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/anomredux/rxcalc/internal/ui/components"
)

func (a App) View() string {
	switch a.phase {
	case PhaseFinished:
		return a.renderOutcome()
	case PhaseConfirmSave:
		return a.renderConfirm()
	}
	return a.renderCollect()
}

func (a App) renderCollect() string {
	var sections []string
	sections = append(sections, theme.Title(i18n.T("cycle_title")))

	if a.last != nil {
		sections = append(sections, a.renderLast())
	}

	sections = append(sections, a.renderPrompt(a.form.Prompt()))
	if banner := a.notifications.Render(a.width); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections,
		components.StatusBar{Width: a.width, Count: a.session.Len(), Total: a.session.GrandTotal()}.Render(),
		components.HelpFooter(i18n.T("tui_help")),
	)
	return strings.Join(sections, "\n\n")
}

func (a App) renderLast() string {
	p := *a.last
	lines := report.Fields(p)
	for i, l := range lines {
		lines[i] = theme.BodyStyle.Render(l)
	}
	return components.Card{
		Title: theme.HeaderStyle.Render(i18n.Tf("drug_line", p.Label())),
		Lines: lines,
		Width: min(a.width, 64),
	}.Render()
}

func (a App) renderConfirm() string {
	return report.Console(a.session) + "\n\n" + a.renderPrompt("💾 "+i18n.T("prompt_save"))
}

func (a App) renderPrompt(prompt string) string {
	cursor := theme.AccentStyle.Render("█")
	return theme.PromptStyle.Render(prompt) + theme.BodyStyle.Render(string(a.input)) + cursor
}

func (a App) renderOutcome() string {
	var lines []string
	if !a.session.Empty() {
		lines = append(lines, report.Console(a.session), "")
	}
	for _, l := range a.outcome {
		lines = append(lines, theme.BodyStyle.Render(l))
	}
	return strings.Join(lines, "\n") + "\n"
}

package ui

import (
	"github.com/anomredux/rxcalc/internal/calc"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/intake"
	"github.com/anomredux/rxcalc/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// submit routes one entered line to the form or the save prompt.
func (a App) submit(line string) (tea.Model, tea.Cmd) {
	switch a.phase {
	case PhaseCollect:
		return a.submitField(line)
	case PhaseConfirmSave:
		return a.answerSave(line)
	}
	return a, nil
}

func (a App) submitField(line string) (tea.Model, tea.Cmd) {
	res := a.form.Submit(line)
	switch res.Status {
	case intake.Rejected:
		a.logger.Debug("input rejected", "field", res.Field, "err", res.Err)
		a.notifications.SetError(intake.Message(res.Err))
	case intake.Complete:
		p := calc.Fill(res.Order)
		a.session.Add(p)
		a.last = &p
		a.logger.Debug("prescription recorded",
			"drug", p.DrugName, "quantity", p.Quantity, "cost", report.Money(p.Cost), "count", a.session.Len())
		a.notifications.SetMessage(i18n.T("added"))
	case intake.Done:
		return a.finishCollecting()
	}
	return a, nil
}

func (a App) finishCollecting() (tea.Model, tea.Cmd) {
	if a.session.Empty() {
		a.outcome = []string{i18n.T("no_prescriptions")}
		return a.finish()
	}
	a.phase = PhaseConfirmSave
	return a, nil
}

func (a App) answerSave(line string) (tea.Model, tea.Cmd) {
	if !report.Affirmative(line) {
		a.outcome = []string{i18n.T("not_saved")}
		return a.finish()
	}

	path, err := report.Save(a.Config.General.OutputDir, a.session, a.now())
	if err != nil {
		a.logger.Debug("save failed", "dir", a.Config.General.OutputDir, "err", err)
		a.outcome = []string{i18n.T("err_save")}
		return a.finish()
	}
	a.logger.Info("summary saved", "path", path, "prescriptions", a.session.Len())
	a.outcome = []string{
		i18n.Tf("saved_to", path),
		i18n.Tf("saved_location", report.Location(path)),
	}
	return a.finish()
}

// endOfInput ends collection, or declines the save when already confirming.
func (a App) endOfInput() (tea.Model, tea.Cmd) {
	a.input = a.input[:0]
	switch a.phase {
	case PhaseCollect:
		a.form.Reset()
		return a.finishCollecting()
	case PhaseConfirmSave:
		return a.answerSave("")
	}
	return a, tea.Quit
}

func (a App) finish() (tea.Model, tea.Cmd) {
	a.phase = PhaseFinished
	a.outcome = append(a.outcome, i18n.T("closed"))
	return a, tea.Quit
}

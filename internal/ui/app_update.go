package ui

import (
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case TickMsg:
		a.notifications.Expire()
		if a.phase == PhaseFinished {
			return a, nil
		}
		return a, doTick()

	case ConfigChangedMsg:
		a.Config = msg.Config
		i18n.SetLanguage(a.Config.General.Language)
		theme.SetColor(a.Config.Display.Color)
		a.logger.Info("config reloaded", "output_dir", a.Config.General.OutputDir)
		a.notifications.SetMessage(i18n.T("config_reloaded"))
		return a, nil
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.phase == PhaseFinished {
		return a, tea.Quit
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		// Treated like end of input: finish the current stage.
		return a.endOfInput()
	case tea.KeyEnter:
		line := string(a.input)
		a.input = a.input[:0]
		return a.submit(line)
	case tea.KeyBackspace:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tea.KeySpace:
		a.input = append(a.input, ' ')
	case tea.KeyRunes:
		a.input = append(a.input, msg.Runes...)
	}
	return a, nil
}

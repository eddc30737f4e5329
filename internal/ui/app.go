package ui

import (
	"io"
	"time"

	"github.com/anomredux/rxcalc/internal/config"
	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/intake"
	"github.com/anomredux/rxcalc/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Phase int

const (
	PhaseCollect Phase = iota
	PhaseConfirmSave
	PhaseFinished
)

// TickMsg expires notifications.
type TickMsg time.Time

// ConfigChangedMsg signals that the config file was edited while running.
type ConfigChangedMsg struct {
	Config config.Config
}

type App struct {
	Config config.Config

	form    *intake.Form
	session *domain.Session
	last    *domain.Prescription

	phase   Phase
	input   []rune
	outcome []string // lines shown once the run is finished

	notifications *NotificationManager
	logger        *log.Logger
	now           func() time.Time

	// Terminal
	width  int
	height int
}

func NewApp(cfg config.Config, logger *log.Logger) App {
	i18n.SetLanguage(cfg.General.Language)
	theme.SetColor(cfg.Display.Color)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return App{
		Config:        cfg,
		form:          intake.NewForm(),
		session:       domain.NewSession(),
		phase:         PhaseCollect,
		notifications: NewNotificationManager(),
		logger:        logger,
		now:           time.Now,
		width:         80,
		height:        24,
	}
}

// Session returns the prescriptions recorded so far.
func (a App) Session() *domain.Session {
	return a.session
}

// Phase returns where the run is: collecting, confirming the save, or finished.
func (a App) Phase() Phase {
	return a.phase
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("rxcalc"),
		doTick(),
	)
}

func doTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/anomredux/rxcalc/internal/calc"
	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/intake"
	"github.com/anomredux/rxcalc/internal/report"
	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/charmbracelet/log"
)

type Options struct {
	OutputDir string
	Banner    bool
	Logger    *log.Logger
	Now       func() time.Time // defaults to time.Now
}

// Loop runs the line-mode calculator: it collects prescriptions until the
// done sentinel or end of input, then prints the summary and offers to save it.
type Loop struct {
	in      *bufio.Reader
	out     io.Writer
	opts    Options
	form    *intake.Form
	session *domain.Session
}

func New(in io.Reader, out io.Writer, opts Options) *Loop {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Loop{
		in:      bufio.NewReader(in),
		out:     out,
		opts:    opts,
		form:    intake.NewForm(),
		session: domain.NewSession(),
	}
}

// Session returns the prescriptions recorded so far.
func (l *Loop) Session() *domain.Session {
	return l.session
}

func (l *Loop) Run() {
	if l.opts.Banner {
		l.println(Banner())
	}
	l.collect()
	l.summarize()
	l.println("\n" + theme.SuccessStyle.Render("✅ "+i18n.T("closed")))
}

// collect runs input cycles until the sentinel or end of input.
func (l *Loop) collect() {
	for {
		l.println("\n" + theme.Title(i18n.T("cycle_title")) + "\n")
		if !l.cycle() {
			return
		}
	}
}

// cycle reads one prescription. It reports false once collection should stop.
func (l *Loop) cycle() bool {
	for {
		line, ok := l.ask(l.form.Prompt())
		if !ok {
			l.opts.Logger.Debug("end of input while collecting", "field", l.form.Field())
			l.form.Reset()
			return false
		}

		res := l.form.Submit(line)
		switch res.Status {
		case intake.Pending:
			continue
		case intake.Done:
			return false
		case intake.Rejected:
			l.opts.Logger.Debug("input rejected", "field", res.Field, "err", res.Err)
			l.println(theme.ErrorStyle.Render("❌ " + intake.Message(res.Err)))
			return true
		case intake.Complete:
			l.record(res.Order)
			return true
		}
	}
}

func (l *Loop) record(o domain.Order) {
	p := calc.Fill(o)
	l.session.Add(p)
	l.opts.Logger.Debug("prescription recorded",
		"drug", p.DrugName, "quantity", p.Quantity, "cost", report.Money(p.Cost), "count", l.session.Len())

	l.println("\n" + report.Details(p))
	l.println("\n" + theme.SuccessStyle.Render("✅ "+i18n.T("added")))
}

func (l *Loop) summarize() {
	if l.session.Empty() {
		l.println("\n" + theme.MutedStyle.Render(i18n.T("no_prescriptions")))
		return
	}

	l.println("\n" + report.Console(l.session) + "\n")
	answer, _ := l.ask("💾 " + i18n.T("prompt_save"))
	if !report.Affirmative(answer) {
		l.println("\n" + theme.MutedStyle.Render("📋 "+i18n.T("not_saved")))
		return
	}

	path, err := report.Save(l.opts.OutputDir, l.session, l.opts.Now())
	if err != nil {
		l.opts.Logger.Debug("save failed", "dir", l.opts.OutputDir, "err", err)
		l.println("\n" + theme.ErrorStyle.Render("❌ "+i18n.T("err_save")))
		return
	}
	l.opts.Logger.Info("summary saved", "path", path, "prescriptions", l.session.Len())
	l.println("\n" + theme.SuccessStyle.Render("✅ "+i18n.Tf("saved_to", path)))
	l.println(theme.MutedStyle.Render("📁 " + i18n.Tf("saved_location", report.Location(path))))
}

// ask prints a prompt and reads one line of any length. It reports false
// at end of input; a final line without a newline is still returned.
func (l *Loop) ask(prompt string) (string, bool) {
	fmt.Fprint(l.out, theme.PromptStyle.Render(prompt))
	line, err := l.in.ReadString('\n')
	if err == nil {
		return strings.TrimRight(line, "\r\n"), true
	}
	if err != io.EOF {
		l.opts.Logger.Warn("read input", "err", err)
	}
	fmt.Fprintln(l.out)
	if line != "" {
		return strings.TrimRight(line, "\r"), true
	}
	return "", false
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anomredux/rxcalc/internal/config"
	"github.com/anomredux/rxcalc/internal/console"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/anomredux/rxcalc/internal/logging"
	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/anomredux/rxcalc/internal/ui"
	"github.com/anomredux/rxcalc/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// version is set via ldflags.
var version = "dev"

// configPollInterval is how often the TUI re-checks the config file when
// filesystem events are unavailable.
const configPollInterval = 2 * time.Second

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		outputDir   = flag.String("output-dir", "", "directory to save the summary file in (overrides config)")
		initConfig  = flag.Bool("init-config", false, "write a default config file to -config if none exists, then exit")
		useTUI      = flag.Bool("tui", false, "run the full-screen terminal UI")
		noColor     = flag.Bool("no-color", false, "disable coloured output")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: rxcalc [flags]\n\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\n%s\n", config.EnvHelp())
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("rxcalc", version)
		return
	}

	if *initConfig {
		created, err := config.Init(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		if created {
			fmt.Println("Wrote", *configPath)
		} else {
			fmt.Println("Config already exists:", *configPath)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags win over file and environment, including on reload.
	overrides := func(c *config.Config) {
		if *outputDir != "" {
			c.General.OutputDir = *outputDir
		}
		if *noColor {
			c.Display.Color = false
		}
	}
	overrides(&cfg)

	logger := logging.New(os.Stderr, cfg.General.LogLevel)
	logger.Debug("config loaded", "path", *configPath, "output_dir", cfg.General.OutputDir)

	if *useTUI {
		runTUI(cfg, *configPath, overrides, logger)
		return
	}

	i18n.SetLanguage(cfg.General.Language)
	theme.SetColor(cfg.Display.Color)
	console.New(os.Stdin, os.Stdout, console.Options{
		OutputDir: cfg.General.OutputDir,
		Banner:    cfg.Display.Banner,
		Logger:    logger,
	}).Run()
}

func runTUI(cfg config.Config, configPath string, overrides func(*config.Config), logger *log.Logger) {
	p := tea.NewProgram(ui.NewApp(cfg, logger))

	w := watcher.New(configPath, configPollInterval, func() {
		next, err := config.Load(configPath)
		if err != nil {
			logger.Warn("reload config", "err", err)
			return
		}
		overrides(&next)
		p.Send(ui.ConfigChangedMsg{Config: next})
	})
	if err := w.Start(); err != nil {
		logger.Warn("watch config", "err", err)
	} else {
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

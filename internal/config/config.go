package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
}

type GeneralConfig struct {
	Language  string `toml:"language" env:"RXCALC_LANGUAGE" env-description:"message language (en)"`
	OutputDir string `toml:"output_dir" env:"RXCALC_OUTPUT_DIR" env-description:"directory summary files are saved to"`
	LogLevel  string `toml:"log_level" env:"RXCALC_LOG_LEVEL" env-description:"log level: debug, info, warn, error"`
}

type DisplayConfig struct {
	Color  bool `toml:"color" env:"RXCALC_COLOR" env-description:"colour terminal output"`
	Banner bool `toml:"banner" env:"RXCALC_BANNER" env-description:"show the startup banner"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Language:  "en",
			OutputDir: ".",
			LogLevel:  "warn",
		},
		Display: DisplayConfig{
			Color:  true,
			Banner: true,
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rxcalc", "config.toml")
}

// Load reads the TOML file at path over the defaults, then applies
// RXCALC_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// EnvHelp describes the environment variables Load honours.
func EnvHelp() string {
	var cfg Config
	header := "Environment variables:"
	help, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return ""
	}
	return help
}

// Init writes the default config to path unless a file is already there.
// It reports whether a file was created.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := Save(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

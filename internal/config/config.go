// Package config loads and provides Hearth's configuration from its YAML
// config file and command-line overrides.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings
	Config struct {
		Notifications NotificationConfig
		Settings      SettingsConfig
		Display       DisplayConfig
		Timeline      TimelineConfig
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
	}

	// SettingsConfig holds behavioral settings
	SettingsConfig struct {
		// Sound is a path to an mp3/ogg/flac/wav file played when a
		// session completes; empty disables playback.
		Sound string
		// Cmd is executed after a session settles.
		Cmd string
		// Category preselects the recording category at startup.
		Category string
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// TimelineConfig controls the day timeline's vertical scale.
	TimelineConfig struct {
		RowsPerHour int
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "hearth"
	configFileName = "config.yml"
	dbFileName     = "hearth.db"
	logFileName    = "hearth.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	hearthEnv := strings.TrimSpace(os.Getenv("HEARTH_ENV"))
	if hearthEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", hearthEnv)
		dbFileName = fmt.Sprintf("hearth_%s.db", hearthEnv)
		logFileName = fmt.Sprintf("hearth_%s.log", hearthEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}

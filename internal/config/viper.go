package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyNotificationsEnabled = "notifications.enabled"
	keySound                = "settings.sound"
	keySessionCmd           = "settings.cmd"
	keyCategory             = "settings.category"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyRowsPerHour          = "timeline.rows_per_hour"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a default config file when none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySound, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyCategory, "")
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyRowsPerHour, 4)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Settings.Sound = v.GetString(keySound)
	c.Settings.Cmd = v.GetString(keySessionCmd)
	c.Settings.Category = v.GetString(keyCategory)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Timeline.RowsPerHour = v.GetInt(keyRowsPerHour)

	if c.Timeline.RowsPerHour < 1 || c.Timeline.RowsPerHour > 60 {
		c.Timeline.RowsPerHour = 4
	}

	return nil
}

package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Category      string
	Sound         string
	SessionCmd    string
	DisableNotify bool
}

// WithCLIConfig returns an Option that overlays CLI flags on top of the
// file-based configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Category:      ctx.String("category"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Category != "" {
		c.Settings.Category = opts.Category
	}

	if opts.Sound != "" {
		if opts.Sound == "off" {
			c.Settings.Sound = ""
		} else {
			c.Settings.Sound = opts.Sound
		}
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}
}

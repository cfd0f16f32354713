package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()

	v := viper.New()
	setViperDefaults(v)

	var c Config
	if err := loadViperConfig(v, &c); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return &c
}

func TestViperDefaults(t *testing.T) {
	c := defaultConfig(t)

	want := &Config{
		Notifications: NotificationConfig{Enabled: true},
		Display: DisplayConfig{
			DarkTheme:      true,
			TwentyFourHour: true,
		},
		Timeline: TimelineConfig{RowsPerHour: 4},
	}

	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsPerHourClamped(t *testing.T) {
	for _, bad := range []int{0, -3, 120} {
		v := viper.New()
		setViperDefaults(v)
		v.Set(keyRowsPerHour, bad)

		var c Config
		if err := loadViperConfig(v, &c); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if c.Timeline.RowsPerHour != 4 {
			t.Errorf(
				"rows_per_hour %d: expected fallback 4, but got %d",
				bad,
				c.Timeline.RowsPerHour,
			)
		}
	}
}

func TestApplyCLIOptions(t *testing.T) {
	cases := []struct {
		name string
		opts CLIOptions
		want SettingsConfig
	}{
		{
			name: "category override",
			opts: CLIOptions{Category: "Study"},
			want: SettingsConfig{Category: "Study"},
		},
		{
			name: "sound off clears the configured sound",
			opts: CLIOptions{Sound: "off"},
			want: SettingsConfig{},
		},
		{
			name: "sound path",
			opts: CLIOptions{Sound: "/tmp/bell.ogg"},
			want: SettingsConfig{Sound: "/tmp/bell.ogg"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig(t)

			applyCLIOptions(c, tc.opts)

			if diff := cmp.Diff(tc.want, c.Settings); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("disable notifications", func(t *testing.T) {
		c := defaultConfig(t)

		applyCLIOptions(c, CLIOptions{DisableNotify: true})

		if c.Notifications.Enabled {
			t.Error("expected notifications to be disabled")
		}
	})
}

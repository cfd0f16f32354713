package app

import "github.com/urfave/cli/v2"

var (
	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: day, week, or month",
		Value:   "week",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Restrict the report to a single category",
	}

	startCategoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Preselect the recording category",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start the added session in the past (e.g. '20 mins ago')",
	}

	durationFlag = &cli.IntFlag{
		Name:  "duration",
		Usage: "Session duration in minutes",
		Value: 25,
	}

	activityFlag = &cli.StringFlag{
		Name:    "activity",
		Aliases: []string{"a"},
		Usage:   "Name the added session is recorded under",
		Value:   "Manually Added",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "New start time for the session (e.g. '14:30')",
	}

	editDurationFlag = &cli.IntFlag{
		Name:  "duration",
		Usage: "New duration in minutes",
		Value: -1,
	}

	setCategoryFlag = &cli.StringFlag{
		Name:  "set-category",
		Usage: "New category for the session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to a sound file (mp3, ogg, flac, wav) played when a session completes. Disable sound by setting to 'off'",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	mergeIntoFlag = &cli.StringFlag{
		Name:  "merge-into",
		Usage: "Reassign the category's records to this category instead of deleting them",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

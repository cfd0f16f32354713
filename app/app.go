package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zaotai/hearth/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the hearth app instance.
func Get() *cli.App {
	hearthApp := &cli.App{
		Name: "hearth",
		Usage: `
		Hearth is a focus-session timer for the command-line. Put a dish on the
		stove, let it simmer while you work, and review where your time went on
		the day timeline.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name: "report",
				Usage: `
				Summarize recorded sessions with per-category totals and an
				allocation chart. Defaults to a reporting period of 7 days`,
				Flags:  []cli.Flag{periodFlag, categoryFlag},
				Action: reportAction,
			},
			{
				Name:   "list",
				Usage:  "List the sessions recorded within a time period",
				Flags:  []cli.Flag{periodFlag, categoryFlag},
				Action: listAction,
			},
			{
				Name:      "add",
				Usage:     "Record a completed session without running the timer",
				ArgsUsage: " ",
				Flags:     []cli.Flag{sinceFlag, durationFlag, activityFlag, categoryFlag},
				Action:    addAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit a recorded session by its list position",
				ArgsUsage: "<#>",
				Flags:     []cli.Flag{periodFlag, startFlag, editDurationFlag, setCategoryFlag},
				Action:    editAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more recorded sessions by list position",
				ArgsUsage: "[<#>...]",
				Flags:     []cli.Flag{periodFlag, categoryFlag},
				Action:    deleteAction,
			},
			{
				Name:   "categories",
				Usage:  "List the active categories",
				Action: listCategoriesAction,
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a new category",
						ArgsUsage: "<name>",
						Action:    addCategoryAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a category, merging or purging its records",
						ArgsUsage: "<name>",
						Flags:     []cli.Flag{mergeIntoFlag},
						Action:    deleteCategoryAction,
					},
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			startCategoryFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return hearthApp
}

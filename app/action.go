package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/google/uuid"

	"github.com/zaotai/hearth/internal/config"
	"github.com/zaotai/hearth/internal/logutil"
	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
	"github.com/zaotai/hearth/internal/ui"
	"github.com/zaotai/hearth/ledger"
	"github.com/zaotai/hearth/report"
	"github.com/zaotai/hearth/schedule"
	"github.com/zaotai/hearth/store"
	"github.com/zaotai/hearth/tui"
)

const (
	envNoColor       = "NO_COLOR"
	envHearthNoColor = "HEARTH_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// ledgerHelper opens the database and loads the ledger. The caller owns
// closing the returned store.
func ledgerHelper() (*ledger.Ledger, store.DB, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	l, err := ledger.New(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return l, db, nil
}

func periodFromCtx(ctx *cli.Context) (schedule.Period, error) {
	switch ctx.String("period") {
	case "day", "d":
		return schedule.Day, nil
	case "week", "w", "":
		return schedule.Week, nil
	case "month", "m":
		return schedule.Month, nil
	}

	return "", fmt.Errorf(
		"invalid period: %q (expected day, week, or month)",
		ctx.String("period"),
	)
}

func reportOpts(ctx *cli.Context, cfg *config.Config) (report.Options, error) {
	period, err := periodFromCtx(ctx)
	if err != nil {
		return report.Options{}, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return report.Options{
		Period:         period,
		Category:       ctx.String("category"),
		Now:            time.Now(),
		TwentyFourHour: cfg.Display.TwentyFourHour,
		Stdout:         config.Stdout,
	}, nil
}

// defaultAction launches the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	return tui.Run(cfg, l)
}

// reportAction computes the summary report for the specified time period.
func reportAction(ctx *cli.Context) error {
	cfg, err := config.New(config.WithViperConfig(config.ConfigFilePath()))
	if err != nil {
		return err
	}

	opts, err := reportOpts(ctx, cfg)
	if err != nil {
		return err
	}

	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	return report.Show(l.Records(), l.Categories(), opts)
}

// listAction prints a table of the sessions recorded within a time
// period.
func listAction(ctx *cli.Context) error {
	cfg, err := config.New(config.WithViperConfig(config.ConfigFilePath()))
	if err != nil {
		return err
	}

	opts, err := reportOpts(ctx, cfg)
	if err != nil {
		return err
	}

	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	return report.List(l.Records(), opts)
}

// addAction records a completed session without running the timer. The
// start time defaults to the duration's distance into the past so the
// session ends now.
func addAction(ctx *cli.Context) error {
	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	mins := ctx.Int("duration")
	if mins < 1 || mins > 999 {
		return fmt.Errorf("duration must be between 1 and 999 minutes")
	}

	start := time.Now().Add(-time.Duration(mins) * time.Minute)

	if since := ctx.String("since"); since != "" {
		start, err = timeutil.FromStr(since)
		if err != nil {
			return err
		}
	}

	category := ctx.String("category")
	if category == "" {
		category = l.Categories()[0]
	}

	if !l.HasCategory(category) {
		return fmt.Errorf("unknown category: %q", category)
	}

	rec := models.Record{
		ID:              uuid.NewString(),
		Category:        category,
		DurationMinutes: mins,
		TimestampMillis: start.UnixMilli(),
		ActivityName:    ctx.String("activity"),
	}

	if err := l.Append(rec); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Recorded %s under %s (%s)",
		rec.ActivityName,
		rec.Category,
		timeutil.FormatMinutes(rec.DurationMinutes),
	)

	return nil
}

// editAction edits the session at the given list position within the
// period.
func editAction(ctx *cli.Context) error {
	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	rec, err := recordAtArg(ctx, l, ctx.Args().First())
	if err != nil {
		return err
	}

	return editRecord(ctx, l, rec)
}

// deleteAction deletes the sessions at the given list positions, or every
// session in the period when no positions are given.
func deleteAction(ctx *cli.Context) error {
	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	period, err := periodFromCtx(ctx)
	if err != nil {
		return err
	}

	filtered := listOrder(schedule.Filter(
		l.Records(), period, time.Now(), ctx.String("category")))

	var doomed []models.Record

	if ctx.Args().Len() == 0 {
		doomed = filtered
	} else {
		for _, arg := range ctx.Args().Slice() {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 || n > len(filtered) {
				return fmt.Errorf("no session at position %q", arg)
			}

			doomed = append(doomed, filtered[n-1])
		}
	}

	return delRecords(l, doomed)
}

func listCategoriesAction(_ *cli.Context) error {
	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	for _, c := range l.Categories() {
		marker := " "
		if l.Referenced(c) {
			marker = "*"
		}

		pterm.Printfln("%s %s", marker, c)
	}

	return nil
}

func addCategoryAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return fmt.Errorf("usage: hearth categories add <name>")
	}

	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	if err := l.AddCategory(name); err != nil {
		return err
	}

	pterm.Success.Printfln("Added category %q", name)

	return nil
}

func deleteCategoryAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return fmt.Errorf("usage: hearth categories delete <name>")
	}

	l, db, err := ledgerHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	return delCategory(l, name, ctx.String("merge-into"))
}

// editConfigAction opens the hearth config file in the user's default
// text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	logutil.Init(config.LogFilePath(), ctx.Bool("debug"))

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HEARTH_NO_COLOR is set
	if _, exists := os.LookupEnv(envHearthNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

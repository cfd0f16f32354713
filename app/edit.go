package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zaotai/hearth/internal/config"
	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/ledger"
	"github.com/zaotai/hearth/schedule"
)

// recordAtArg resolves a 1-based list position within the period filter
// to a concrete record. Positions match the output of the list command
// under the same flags.
func recordAtArg(ctx *cli.Context, l *ledger.Ledger, arg string) (models.Record, error) {
	if arg == "" {
		return models.Record{}, fmt.Errorf("usage: hearth edit <#>")
	}

	period, err := periodFromCtx(ctx)
	if err != nil {
		return models.Record{}, err
	}

	filtered := listOrder(schedule.Filter(l.Records(), period, time.Now(), ""))

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(filtered) {
		return models.Record{}, fmt.Errorf("no session at position %q", arg)
	}

	return filtered[n-1], nil
}

// editRecord applies the edit flags to the record and saves it.
func editRecord(ctx *cli.Context, l *ledger.Ledger, rec models.Record) error {
	start := rec.StartTime()

	edit := ledger.Edit{
		Category:        rec.Category,
		DurationMinutes: rec.DurationMinutes,
		StartHour:       start.Hour(),
		StartMinute:     start.Minute(),
	}

	if v := ctx.String("start"); v != "" {
		t, err := time.Parse("15:04", v)
		if err != nil {
			return fmt.Errorf("invalid start time %q (expected HH:MM)", v)
		}

		edit.StartHour, edit.StartMinute = t.Hour(), t.Minute()
	}

	if v := ctx.Int("duration"); v >= 0 {
		edit.DurationMinutes = v
	}

	if v := ctx.String("set-category"); v != "" {
		if !l.HasCategory(v) {
			return fmt.Errorf("unknown category: %q", v)
		}

		edit.Category = v
	}

	if err := l.UpdateRecord(rec.ID, edit); err != nil {
		return err
	}

	for _, r := range l.Records() {
		if r.ID == rec.ID {
			printRecordsTable(config.Stdout, []models.Record{r})
			break
		}
	}

	pterm.Success.Println("Session updated")

	return nil
}

package app

import (
	"fmt"
	"io"

	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
	"github.com/zaotai/hearth/internal/ui"
	"github.com/zaotai/hearth/schedule"
)

const noRecordsMsg = "No sessions found for the specified time range"

// listOrder flattens the day-grouped view into the order the list command
// numbers sessions with, so edit and delete positions line up with it.
func listOrder(records []models.Record) []models.Record {
	var out []models.Record

	for _, group := range schedule.GroupByDay(records) {
		out = append(out, group.Records...)
	}

	return out
}

// printRecordsTable prints a session table to the command-line.
func printRecordsTable(w io.Writer, records []models.Record) {
	tableBody := make([][]string, len(records))

	for i := range records {
		rec := records[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			rec.StartTime().Format("Jan 02, 2006 03:04 PM"),
			rec.Category,
			timeutil.FormatMinutes(rec.DurationMinutes),
			rec.ActivityName,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START DATE", "CATEGORY", "DURATION", "ACTIVITY"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

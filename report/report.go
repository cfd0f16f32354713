// Package report renders ledger statistics for the command-line.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
	"github.com/zaotai/hearth/internal/ui"
	"github.com/zaotai/hearth/schedule"
)

const (
	barChartChar = "▇"
	noRecordsMsg = "No sessions found for the specified time range"
)

// Options control what Show and List render.
type Options struct {
	Period         schedule.Period
	Category       string
	Now            time.Time
	TwentyFourHour bool
	Stdout         io.Writer
}

func (o Options) timeFormat() string {
	if o.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

// Show renders the period summary: session count, total time, the
// per-category allocation with chart shares, and a bar chart.
func Show(records []models.Record, categories []string, opts Options) error {
	filtered := schedule.Filter(records, opts.Period, opts.Now, opts.Category)
	summary := schedule.Summarize(filtered)

	reportingStart := schedule.Cutoff(opts.Period, opts.Now).
		Format("January 02, 2006")
	reportingEnd := opts.Now.Format("January 02, 2006")

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Reporting period: %s - %s", reportingStart, reportingEnd)

	if summary.Count == 0 {
		fmt.Fprintln(opts.Stdout, strings.TrimSpace(header))
		pterm.Info.Println(noRecordsMsg)

		return nil
	}

	output := fmt.Sprint(
		header,
		getSummary(summary),
		getAllocation(summary, categories),
		getBarChart(summary, categories),
	)

	fmt.Fprintln(opts.Stdout, strings.TrimSpace(output))

	return nil
}

// getSummary renders the headline numbers for the period.
func getSummary(summary schedule.Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(timeutil.FormatMinutes(summary.GrandTotal)),
	)

	count := fmt.Sprintln("Sessions:", ui.Green(summary.Count))

	return header + timeLogged + count
}

// getAllocation renders each category's total and its share of the chart.
func getAllocation(summary schedule.Summary, categories []string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Allocation")))

	for _, slice := range summary.Slices(categories) {
		builder.WriteString(fmt.Sprintf(
			"%s: %s (%d%%)\n",
			slice.Category,
			ui.Green(timeutil.FormatMinutes(slice.Minutes)),
			timeutil.Round(slice.Fraction*100),
		))
	}

	return builder.String()
}

func getBarChart(summary schedule.Summary, categories []string) string {
	header := ui.Blue("\nCategory breakdown (minutes)")

	var bars pterm.Bars

	for _, cat := range summary.CategoryOrder(categories) {
		bars = append(bars, pterm.Bar{
			Value: summary.CategoryTotals[cat],
			Label: cat,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// List prints the filtered records grouped by day, most recent day first.
func List(records []models.Record, opts Options) error {
	filtered := schedule.Filter(records, opts.Period, opts.Now, opts.Category)

	if len(filtered) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	tableBody := [][]string{
		{"#", "DATE", "START", "CATEGORY", "DURATION", "ACTIVITY"},
	}

	var i int

	for _, group := range schedule.GroupByDay(filtered) {
		for _, rec := range group.Records {
			i++

			tableBody = append(tableBody, []string{
				fmt.Sprintf("%d", i),
				group.Day.Format("Jan 02, 2006"),
				rec.StartTime().Format(opts.timeFormat()),
				rec.Category,
				timeutil.FormatMinutes(rec.DurationMinutes),
				rec.ActivityName,
			})
		}
	}

	ui.PrintTable(tableBody, opts.Stdout)

	return nil
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaotai/hearth/catalog"
	"github.com/zaotai/hearth/engine"
	"github.com/zaotai/hearth/internal/timeutil"
	"github.com/zaotai/hearth/schedule"
)

const (
	padding          = 2
	maxProgressWidth = 60
	timelineTopRow   = 3
	leftPaneWidth    = 36
	hourLabelWidth   = 5
	scrollStep       = 4
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("243"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("214"))

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	selectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("94")).
			Foreground(lipgloss.Color("230"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("180"))
)

// categoryPalette mirrors the warm clay tones of the hearth theme.
// Categories take colors by their position in the active list.
var categoryPalette = []lipgloss.Color{
	"#8b4513", "#a67c52", "#5d4037", "#166534", "#2e7d32", "#3e2723",
}

// iconGlyphs maps catalog icon keys to terminal glyphs.
var iconGlyphs = map[string]string{
	"lurou":   "🍲",
	"rice":    "🍚",
	"stew":    "🥘",
	"cake":    "🍢",
	"fish":    "🐟",
	"noodle":  "🍜",
	"milktea": "🧋",
	"apple":   "🍎",
	"stove":   "🔥",
}

func iconGlyph(key string) string {
	if g, ok := iconGlyphs[key]; ok {
		return g
	}

	return "🍳"
}

func (m Model) categoryStyle(name string) lipgloss.Style {
	idx := 0

	for i, c := range m.ledger.Categories() {
		if c == name {
			idx = i
			break
		}
	}

	color := categoryPalette[idx%len(categoryPalette)]

	return lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("230"))
}

func (m Model) View() string {
	if m.form != nil {
		return lipgloss.NewStyle().Padding(1, padding).Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	if m.activeTab == tabStove {
		b.WriteString(m.stoveView())
	} else {
		b.WriteString(m.historyView())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	return b.String()
}

func (m Model) tabBar() string {
	stove := tabStyle.Render("Stove")
	history := tabStyle.Render("History")

	if m.activeTab == tabStove {
		stove = activeTabStyle.Render("Stove")
	} else {
		history = activeTabStyle.Render("History")
	}

	return stove + dimStyle.Render("·") + history
}

func (m Model) stoveView() string {
	var b strings.Builder

	indent := strings.Repeat(" ", padding)

	b.WriteString(indent + dimStyle.Render(modeLabel(m.clock.Mode)) + "\n\n")
	b.WriteString(indent + clockStyle.Render(formatSeconds(m.clock.Seconds)))
	b.WriteString(dimStyle.Render("  " + statusLabel(m.clock.Status)))
	b.WriteString("\n\n")

	b.WriteString(indent + iconGlyph(m.clock.Activity.IconKey) + " " + m.clock.Activity.Name)
	b.WriteString(dimStyle.Render("  [" + m.clock.Category + "]"))
	b.WriteString("\n\n")

	if !m.clock.CountingUp() && m.clock.DurationMinutes > 0 {
		total := float64(m.clock.DurationMinutes * 60)
		pct := 1 - float64(m.clock.Seconds)/total

		b.WriteString(indent + m.progress.ViewAs(pct) + "\n\n")
	}

	b.WriteString(indent + headingStyle.Render("Pantry") + "\n")

	for i, dish := range m.dishes() {
		line := fmt.Sprintf("%s %s", iconGlyph(dish.IconKey), dish.Name)
		if !dish.CountUp() {
			line += dimStyle.Render(fmt.Sprintf("  %dm", dish.NominalDurationMinutes))
		} else {
			line += dimStyle.Render("  open-ended")
		}

		if i == m.dishIndex() {
			b.WriteString(indent + cursorStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(indent + "  " + line + "\n")
		}
	}

	return b.String()
}

func (m Model) historyView() string {
	left := m.summaryPane()

	var right []string
	if m.timelineVisible() {
		right = m.timelineRowsView()
	} else {
		right = m.recordListView()
	}

	leftLines := strings.Split(left, "\n")

	rows := len(leftLines)
	if len(right) > rows {
		rows = len(right)
	}

	var b strings.Builder

	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}

		if i < len(right) {
			r = right[i]
		}

		b.WriteString(padRight(l, leftPaneWidth) + r + "\n")
	}

	return b.String()
}

func (m Model) summaryPane() string {
	now := time.Now()
	records := schedule.Filter(m.ledger.Records(), m.period, now, m.drill)
	summary := schedule.Summarize(records)

	var b strings.Builder

	b.WriteString(" " + headingStyle.Render(periodLabel(m.period)))
	if m.drill != "" {
		b.WriteString(dimStyle.Render(" › " + m.drill))
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(" Time logged: %s\n", timeutil.FormatMinutes(summary.GrandTotal)))
	b.WriteString(fmt.Sprintf(" Sessions:    %d\n\n", summary.Count))

	if m.drill == "" {
		for _, slice := range summary.Slices(m.ledger.Categories()) {
			swatch := m.categoryStyle(slice.Category).Render("  ")
			b.WriteString(fmt.Sprintf(" %s %-10s %8s %4d%%\n",
				swatch, slice.Category,
				timeutil.FormatMinutes(slice.Minutes),
				timeutil.Round(slice.Fraction*100)))
		}
	}

	return b.String()
}

// timelineRowsView renders the visible window of today's vertical
// timeline. Each terminal row covers a fixed number of minutes set by the
// rows-per-hour preference; blocks paint over the grid in z-order and the
// live drag selection paints over everything.
func (m Model) timelineRowsView() []string {
	total := int(m.layout.Height())
	blocks := m.layout.Blocks(m.dayRecords())

	owner := make([]int, total)
	for i := range owner {
		owner[i] = -1
	}

	for i, blk := range blocks {
		start := int(blk.Top)

		end := int(blk.Top + blk.Height)
		if end <= start {
			end = start + 1
		}

		for r := start; r < end && r < total; r++ {
			owner[r] = i
		}
	}

	selStart, selEnd := -1, -1
	if m.drag.Active() {
		a, b := m.drag.Span()
		selStart = int(float64(a) * m.layout.PixelsPerMinute)
		selEnd = int(float64(b) * m.layout.PixelsPerMinute)
	}

	width := m.width - leftPaneWidth - hourLabelWidth - 3
	if width < 20 {
		width = 20
	}

	rows := make([]string, 0, m.timelineRows())

	for r := m.scrollRows; r < total && len(rows) < m.timelineRows(); r++ {
		minute := m.layout.MinuteAt(float64(r))

		label := strings.Repeat(" ", hourLabelWidth)
		if minute%60 == 0 && int(float64(minute)*m.layout.PixelsPerMinute) == r {
			label = m.formatHour(minute / 60)
		}

		line := dimStyle.Render(label + " │ ")

		switch {
		case selStart >= 0 && r >= selStart && r <= selEnd:
			line += selectionStyle.Render(padRight(" new session", width))
		case owner[r] >= 0:
			blk := blocks[owner[r]]

			text := ""
			if r == int(blk.Top) {
				text = fmt.Sprintf(" %s · %s", blk.Record.ActivityName,
					timeutil.FormatMinutes(blk.Record.DurationMinutes))
			}

			line += m.categoryStyle(blk.Record.Category).Render(padRight(text, width))
		}

		rows = append(rows, line)
	}

	return rows
}

// recordListView renders the visible window of the record list.
func (m Model) recordListView() []string {
	return window(m.recordListLines(), m.scrollRows, m.timelineRows())
}

// recordListLines renders the full week/month (or drilled-down) record
// list, grouped by day with the most recent day first.
func (m Model) recordListLines() []string {
	now := time.Now()
	records := schedule.Filter(m.ledger.Records(), m.period, now, m.drill)

	var lines []string

	for _, group := range schedule.GroupByDay(records) {
		total := 0
		for _, r := range group.Records {
			total += r.DurationMinutes
		}

		lines = append(lines, headingStyle.Render(group.Day.Format("Mon, Jan 2"))+
			dimStyle.Render("  "+timeutil.FormatMinutes(total)))

		for _, r := range group.Records {
			start := r.StartTime().Format(m.clockLayout())
			lines = append(lines, fmt.Sprintf("  %s  %-8s %-10s %s %s",
				start,
				timeutil.FormatMinutes(r.DurationMinutes),
				r.Category,
				iconGlyph(catalog.IconFor(r.ActivityName)),
				r.ActivityName))
		}

		lines = append(lines, "")
	}

	if len(lines) == 0 {
		lines = []string{dimStyle.Render(" Nothing simmered in this period yet.")}
	}

	return lines
}

func (m Model) footer() string {
	var help string

	if m.activeTab == tabStove {
		help = " space start/pause · r reset · f finish · m mode · j/k dish · enter cook · c category · e time · tab history · q quit"
	} else {
		help = " 1/2/3 period · ←/→ drill down · drag to add · click to edit · a/x categories · tab stove · q quit"
	}

	out := dimStyle.Render(help)
	if m.status != "" {
		out += "\n" + statusStyle.Render(" "+m.status)
	}

	return out
}

// timelineRows is the number of terminal rows available to the right-hand
// history pane.
func (m Model) timelineRows() int {
	rows := m.height - timelineTopRow - 2
	if rows < 4 {
		rows = 4
	}

	return rows
}

func (m Model) clockLayout() string {
	if m.cfg.Display.TwentyFourHour {
		return "15:04"
	}

	return "3:04 PM"
}

func (m Model) formatHour(hour int) string {
	if m.cfg.Display.TwentyFourHour {
		return fmt.Sprintf("%02d:00", hour)
	}

	t := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)

	return fmt.Sprintf("%5s", t.Format("3 PM"))
}

func formatSeconds(secs int) string {
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	}

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func modeLabel(mode engine.Mode) string {
	switch mode {
	case engine.ShortBreak:
		return "Short Break"
	case engine.LongBreak:
		return "Long Break"
	case engine.CountUp:
		return "Free Simmer"
	default:
		return "Focus"
	}
}

func statusLabel(status engine.Status) string {
	switch status {
	case engine.Running:
		return "simmering"
	case engine.Paused:
		return "off the boil"
	case engine.Finished:
		return "ready!"
	default:
		return "cold stove"
	}
}

func periodLabel(p schedule.Period) string {
	switch p {
	case schedule.Week:
		return "Past 7 days"
	case schedule.Month:
		return "Past 30 days"
	default:
		return "Today"
	}
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}

func window(lines []string, offset, size int) []string {
	if offset >= len(lines) {
		offset = len(lines) - 1
	}

	if offset < 0 {
		offset = 0
	}

	end := offset + size
	if end > len(lines) {
		end = len(lines)
	}

	return lines[offset:end]
}

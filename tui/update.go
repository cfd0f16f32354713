package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zaotai/hearth/engine"
	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
	"github.com/zaotai/hearth/ledger"
	"github.com/zaotai/hearth/schedule"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = msg.Width - 2*padding
		if m.progress.Width > maxProgressWidth {
			m.progress.Width = maxProgressWidth
		}

		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case sessionDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}

		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleTick advances the clock by one second. Ticks scheduled under a
// previous generation are dropped: pausing or resetting bumps the
// generation, so a stale in-flight tick can never move a clock that the
// user has already stopped.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen {
		return m, nil
	}

	clock, rec := m.clock.Tick(msg.t)

	if rec != nil {
		if err := m.ledger.Append(*rec); err != nil {
			m.status = err.Error()
		}
	}

	m.clock = clock

	if clock.Status == engine.Running {
		return m, m.tick()
	}

	if clock.Status == engine.Finished {
		return m, m.sessionDone(rec)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keymap

	switch {
	case key.Matches(msg, k.quit):
		return m, tea.Quit
	case key.Matches(msg, k.tab):
		if m.activeTab == tabStove {
			m.activeTab = tabHistory
		} else {
			m.activeTab = tabStove
		}

		m.scrollRows = 0
		m.status = ""

		return m, nil
	}

	if m.activeTab == tabHistory {
		return m.handleHistoryKey(msg)
	}

	return m.handleStoveKey(msg)
}

func (m Model) handleStoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keymap

	switch {
	case key.Matches(msg, k.togglePlay):
		switch m.clock.Status {
		case engine.Running:
			m.tickGen++
			m.clock = m.clock.Pause()

			return m, nil
		case engine.Finished:
			m.clock = m.clock.Reset()
			fallthrough
		default:
			m.clock = m.clock.Start()
			m.tickGen++

			return m, m.tick()
		}
	case key.Matches(msg, k.reset):
		m.tickGen++
		m.clock = m.clock.Reset()

		return m, nil
	case key.Matches(msg, k.finishNow):
		clock, rec := m.clock.FinishNow(time.Now())
		if clock.Status != m.clock.Status {
			m.tickGen++
		}

		m.clock = clock

		if rec != nil {
			if err := m.ledger.Append(*rec); err != nil {
				m.status = err.Error()
			}

			return m, m.sessionDone(rec)
		}

		return m, nil
	case key.Matches(msg, k.mode):
		dishIdx := m.dishIndex()
		next := nextMode(m.clock.Mode)

		m.clock = m.clock.SetMode(next, m.dishFor(next, dishIdx))

		return m, nil
	case key.Matches(msg, k.next):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, k.prev):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, k.choose):
		dish := m.dishes()[m.dishIndex()]

		if m.clock.WouldDiscard() {
			m.pendingDish = dish
			return m.openSwitchDishForm()
		}

		m.clock = m.clock.Reset().SetActivity(dish)

		return m, nil
	case key.Matches(msg, k.category):
		m.clock = m.clock.SetCategory(nextCategory(m.ledger.Categories(), m.clock.Category))
		return m, nil
	case key.Matches(msg, k.duration):
		if m.clock.Status != engine.Idle || m.clock.CountingUp() {
			return m, nil
		}

		return m.openDurationForm()
	}

	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keymap

	switch {
	case key.Matches(msg, k.period):
		switch msg.String() {
		case "1":
			m.period = schedule.Day
		case "2":
			m.period = schedule.Week
		case "3":
			m.period = schedule.Month
		}

		m.drill = ""
		m.scrollRows = 0

		return m, nil
	case key.Matches(msg, k.drill):
		step := 1
		if msg.String() == "left" {
			step = -1
		}

		m.drill = cycleDrill(m.drillOptions(), m.drill, step)

		return m, nil
	case key.Matches(msg, k.scrollUp):
		m.scrollRows -= scrollStep
		m = m.clampScroll()

		return m, nil
	case key.Matches(msg, k.scrollDown):
		m.scrollRows += scrollStep
		m = m.clampScroll()

		return m, nil
	case key.Matches(msg, k.addCategory):
		return m.openAddCategoryForm()
	case key.Matches(msg, k.delCategory):
		return m.openDeleteCategoryForm()
	}

	return m, nil
}

// handleMouse drives the day timeline. A press on an existing block opens
// its edit form; a press on empty space starts a drag that, on release,
// yields a new record candidate to confirm. Blocks win over drag starts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.activeTab != tabHistory {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollRows -= scrollStep
		return m.clampScroll(), nil
	case tea.MouseButtonWheelDown:
		m.scrollRows += scrollStep
		return m.clampScroll(), nil
	}

	if !m.timelineVisible() {
		return m, nil
	}

	y := float64(msg.Y - timelineTopRow + m.scrollRows)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if msg.X < leftPaneWidth || msg.Y < timelineTopRow {
			return m, nil
		}

		blocks := m.layout.Blocks(m.dayRecords())
		if block, ok := m.layout.BlockAt(blocks, y); ok {
			return m.openEditRecordForm(block.Record)
		}

		m.drag.Begin(m.layout.MinuteAt(y))

		return m, nil
	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.drag.Move(m.layout.MinuteAt(y))
		}

		return m, nil
	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return m, nil
		}

		candidate, ok := m.drag.Release(time.Now(), m.clock.Category, manualActivityName)
		if !ok {
			return m, nil
		}

		return m.openCreateRecordForm(candidate)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m = m.applyForm()
		m.form = nil
		m.formKind = formNone
	case huh.StateAborted:
		m.drag.Cancel()
		m.form = nil
		m.formKind = formNone
	}

	return m, cmd
}

func (m Model) applyForm() Model {
	switch m.formKind {
	case formDuration:
		mins, err := parseMinutes(m.fDuration)
		if err != nil {
			return m
		}

		m.clock = m.clock.SetDuration(mins)
	case formSwitchDish:
		if !m.fConfirm {
			return m
		}

		m.tickGen++
		m.clock = m.clock.Reset().SetActivity(m.pendingDish)
	case formCreateRecord:
		if !m.fConfirm {
			return m
		}

		rec, err := m.recordFromForm(m.editing)
		if err != nil {
			m.status = err.Error()
			return m
		}

		if err := m.ledger.Append(rec); err != nil {
			m.status = err.Error()
		}
	case formCategoryAdd:
		if err := m.ledger.AddCategory(m.fName); err != nil {
			m.status = err.Error()
		}
	case formCategoryDelete:
		if !m.fConfirm {
			return m
		}

		target := m.fMergeTarget
		if target == purgeOption {
			target = ""
		}

		if err := m.ledger.DeleteCategory(m.fCategory, target); err != nil {
			m.status = err.Error()
			return m
		}

		if m.drill == m.fCategory {
			m.drill = ""
		}

		if !m.ledger.HasCategory(m.clock.Category) {
			m.clock = m.clock.SetCategory(m.ledger.Categories()[0])
		}
	case formEditRecord:
		if m.fDelete {
			if err := m.ledger.DeleteRecord(m.editing.ID); err != nil {
				m.status = err.Error()
			}

			return m
		}

		hour, minute, err := parseClockTime(m.fStart)
		if err != nil {
			m.status = err.Error()
			return m
		}

		mins, err := parseMinutes(m.fDuration)
		if err != nil {
			m.status = err.Error()
			return m
		}

		err = m.ledger.UpdateRecord(m.editing.ID, ledger.Edit{
			Category:        m.fCategory,
			DurationMinutes: mins,
			StartHour:       hour,
			StartMinute:     minute,
		})
		if err != nil {
			m.status = err.Error()
		}
	}

	return m
}

// recordFromForm rebuilds a drag candidate with the form's overrides
// applied, keeping the candidate's date.
func (m Model) recordFromForm(candidate models.Record) (models.Record, error) {
	hour, minute, err := parseClockTime(m.fStart)
	if err != nil {
		return models.Record{}, err
	}

	mins, err := parseMinutes(m.fDuration)
	if err != nil {
		return models.Record{}, err
	}

	start := timeutil.AtMinuteOfDay(candidate.StartTime(), hour*60+minute)

	candidate.Category = m.fCategory
	candidate.DurationMinutes = mins
	candidate.TimestampMillis = start.UnixMilli()

	return candidate, nil
}

// dayRecords returns today's records, the set the DAY timeline shows.
func (m Model) dayRecords() []models.Record {
	return schedule.Filter(m.ledger.Records(), schedule.Day, time.Now(), "")
}

// timelineVisible reports whether the pointer-driven timeline pane is on
// screen. Drill-down and the longer periods replace it with a list.
func (m Model) timelineVisible() bool {
	return m.activeTab == tabHistory && m.period == schedule.Day && m.drill == ""
}

// drillOptions lists the drill-down cycle: the empty string (no drill)
// followed by every category present in the current period.
func (m Model) drillOptions() []string {
	records := schedule.Filter(m.ledger.Records(), m.period, time.Now(), "")
	summary := schedule.Summarize(records)

	return append([]string{""}, summary.CategoryOrder(m.ledger.Categories())...)
}

// clampScroll keeps the scroll offset inside the pane that is actually
// on screen, which is the day timeline or the grouped record list.
func (m Model) clampScroll() Model {
	content := int(m.layout.Height())
	if !m.timelineVisible() {
		content = len(m.recordListLines())
	}

	max := content - m.timelineRows()
	if m.scrollRows > max {
		m.scrollRows = max
	}

	if m.scrollRows < 0 {
		m.scrollRows = 0
	}

	return m
}

func nextMode(mode engine.Mode) engine.Mode {
	switch mode {
	case engine.Focus, engine.CountUp:
		return engine.ShortBreak
	case engine.ShortBreak:
		return engine.LongBreak
	default:
		return engine.Focus
	}
}

func nextCategory(categories []string, current string) string {
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}

	if len(categories) == 0 {
		return current
	}

	return categories[0]
}

func cycleDrill(options []string, current string, step int) string {
	idx := 0

	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}

	idx = (idx + step + len(options)) % len(options)

	return options[idx]
}

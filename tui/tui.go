package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zaotai/hearth/catalog"
	"github.com/zaotai/hearth/engine"
	"github.com/zaotai/hearth/internal/config"
	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/ledger"
	"github.com/zaotai/hearth/schedule"
)

type tab int

const (
	tabStove tab = iota
	tabHistory
)

type formKind int

const (
	formNone formKind = iota
	formCreateRecord
	formEditRecord
	formDuration
	formSwitchDish
	formCategoryAdd
	formCategoryDelete
)

// tickMsg carries the generation it was scheduled under. A tick whose
// generation no longer matches the model's is stale and must be dropped,
// so at most one live tick chain exists at any time.
type tickMsg struct {
	gen int
	t   time.Time
}

type sessionDoneMsg struct{ err error }

// Model is the bubbletea model for the whole program.
type Model struct {
	cfg    *config.Config
	ledger *ledger.Ledger

	clock   engine.Clock
	tickGen int

	activeTab tab

	// dish selection per mode
	focusIndex int
	breakIndex int

	// history state
	period     schedule.Period
	drill      string
	scrollRows int

	// active modal form, nil when no form is showing
	form     *huh.Form
	formKind formKind

	// form value holders
	fStart       string
	fDuration    string
	fCategory    string
	fName        string
	fMergeTarget string
	fConfirm     bool
	fDelete      bool

	editing     models.Record
	pendingDish catalog.Activity

	drag   schedule.Drag
	layout schedule.Layout

	progress progress.Model
	keymap   keymap

	width  int
	height int
	status string
}

// New assembles the model from loaded state. The clock starts idle in
// focus mode on the first dish of the pantry.
func New(cfg *config.Config, l *ledger.Ledger) Model {
	clock := engine.New(engine.Focus, catalog.FocusItems[0], cfg.Settings.Category)
	if clock.Category == "" || !l.HasCategory(clock.Category) {
		clock.Category = l.Categories()[0]
	}

	rows := cfg.Timeline.RowsPerHour

	return Model{
		cfg:      cfg,
		ledger:   l,
		clock:    clock,
		period:   schedule.Day,
		layout:   schedule.Layout{PixelsPerMinute: float64(rows) / 60.0, MinBlockHeight: 1},
		progress: progress.New(progress.WithDefaultGradient()),
		keymap:   defaultKeymap,
	}
}

// Run starts the program on the alt screen with full mouse motion
// reporting, which the timeline's drag gesture needs.
func Run(cfg *config.Config, l *ledger.Ledger) error {
	_, err := tea.NewProgram(New(cfg, l), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()

	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, t: t}
	})
}

// dishes returns the pantry for the current mode.
func (m Model) dishes() []catalog.Activity {
	if m.clock.Mode == engine.ShortBreak || m.clock.Mode == engine.LongBreak {
		return catalog.BreakItems
	}

	items := make([]catalog.Activity, 0, len(catalog.FocusItems)+1)
	items = append(items, catalog.FocusItems...)
	items = append(items, catalog.FreeSimmer)

	return items
}

func (m Model) dishIndex() int {
	if m.clock.Mode == engine.ShortBreak || m.clock.Mode == engine.LongBreak {
		return m.breakIndex
	}

	return m.focusIndex
}

func (m *Model) setDishIndex(i int) {
	if m.clock.Mode == engine.ShortBreak || m.clock.Mode == engine.LongBreak {
		m.breakIndex = i
		return
	}

	m.focusIndex = i
}

func (m *Model) moveSelection(delta int) {
	items := m.dishes()
	m.setDishIndex((m.dishIndex() + delta + len(items)) % len(items))
}

// dishFor picks the pantry entry a mode switch lands on, clamping the
// previous selection to the target pantry's size.
func (m Model) dishFor(mode engine.Mode, idx int) catalog.Activity {
	items := catalog.FocusItems
	if mode == engine.ShortBreak || mode == engine.LongBreak {
		items = catalog.BreakItems
	}

	if idx >= len(items) {
		idx = 0
	}

	return items[idx]
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zaotai/hearth/engine"
	"github.com/zaotai/hearth/internal/models"
)

const manualActivityName = "Manually Added"

func (m Model) openDurationForm() (tea.Model, tea.Cmd) {
	m.fDuration = strconv.Itoa(m.clock.DurationMinutes)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cook time (minutes)").
				Value(&m.fDuration).
				Validate(validateMinutes),
		),
	)
	m.formKind = formDuration

	return m, m.form.Init()
}

func (m Model) openSwitchDishForm() (tea.Model, tea.Cmd) {
	m.fConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Take the pot off the stove and start %s?", m.pendingDish.Name)).
				Description("The current session will be discarded.").
				Affirmative("Switch").
				Negative("Keep cooking").
				Value(&m.fConfirm),
		),
	)
	m.formKind = formSwitchDish

	return m, m.form.Init()
}

func (m Model) openCreateRecordForm(candidate models.Record) (tea.Model, tea.Cmd) {
	m.editing = candidate
	m.fStart = candidate.StartTime().Format("15:04")
	m.fDuration = strconv.Itoa(candidate.DurationMinutes)
	m.fCategory = candidate.Category
	m.fConfirm = true

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&m.fStart).
				Validate(validateClockTime),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&m.fDuration).
				Validate(validateMinutes),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(m.ledger.Categories()...)...).
				Value(&m.fCategory),
			huh.NewConfirm().
				Title("Add this record?").
				Affirmative("Add").
				Negative("Discard").
				Value(&m.fConfirm),
		),
	)
	m.formKind = formCreateRecord

	return m, m.form.Init()
}

func (m Model) openEditRecordForm(rec models.Record) (tea.Model, tea.Cmd) {
	m.editing = rec
	m.fStart = rec.StartTime().Format("15:04")
	m.fDuration = strconv.Itoa(rec.DurationMinutes)
	m.fCategory = rec.Category
	m.fDelete = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&m.fStart).
				Validate(validateClockTime),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&m.fDuration).
				Validate(validateMinutes),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(m.ledger.Categories()...)...).
				Value(&m.fCategory),
			huh.NewConfirm().
				Title("Delete this record instead?").
				Affirmative("Delete").
				Negative("Save changes").
				Value(&m.fDelete),
		),
	)
	m.formKind = formEditRecord

	return m, m.form.Init()
}

// purgeOption stands in for "no merge target" in the delete form.
const purgeOption = "(delete its sessions)"

func (m Model) openAddCategoryForm() (tea.Model, tea.Cmd) {
	m.fName = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New category").
				Value(&m.fName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be blank")
					}

					return nil
				}),
		),
	)
	m.formKind = formCategoryAdd

	return m, m.form.Init()
}

func (m Model) openDeleteCategoryForm() (tea.Model, tea.Cmd) {
	cats := m.ledger.Categories()

	m.fCategory = cats[0]
	m.fMergeTarget = purgeOption
	m.fConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Remove category").
				Options(huh.NewOptions(cats...)...).
				Value(&m.fCategory),
			huh.NewSelect[string]().
				Title("Move its sessions to").
				Options(huh.NewOptions(append([]string{purgeOption}, cats...)...)...).
				Value(&m.fMergeTarget),
			huh.NewConfirm().
				Title("Remove it?").
				Affirmative("Remove").
				Negative("Keep").
				Value(&m.fConfirm),
		),
	)
	m.formKind = formCategoryDelete

	return m, m.form.Init()
}

func validateMinutes(s string) error {
	_, err := parseMinutes(s)
	return err
}

func validateClockTime(s string) error {
	_, _, err := parseClockTime(s)
	return err
}

func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}

	if n < 0 || n > engine.MaxDurationMinutes {
		return 0, fmt.Errorf("duration must be between 0 and %d minutes", engine.MaxDurationMinutes)
	}

	return n, nil
}

func parseClockTime(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("time must look like 14:30")
	}

	return t.Hour(), t.Minute(), nil
}

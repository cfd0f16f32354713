package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/zaotai/hearth/internal/config"
	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/ledger"
)

// delRecords deletes all the specified sessions. It requests confirmation
// before proceeding with the operation.
func delRecords(l *ledger.Ledger, records []models.Record) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(config.Stdout, records)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(config.Stdout, warning)

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')

	for _, rec := range records {
		if err := l.DeleteRecord(rec.ID); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Deleted %d session(s)", len(records))

	return nil
}

// delCategory removes a category after a confirmation prompt, merging its
// records into the target category or purging them when no target is
// given.
func delCategory(l *ledger.Ledger, name, mergeTarget string) error {
	var warning string

	if mergeTarget != "" {
		warning = pterm.Warning.Sprintf(
			"Category %q will be deleted and its sessions reassigned to %q. Press ENTER to proceed",
			name, mergeTarget,
		)
	} else if l.Referenced(name) {
		warning = pterm.Warning.Sprintf(
			"Category %q and all of its sessions will be deleted permanently. Press ENTER to proceed",
			name,
		)
	}

	if warning != "" {
		fmt.Fprint(config.Stdout, warning)

		reader := bufio.NewReader(config.Stdin)

		_, _ = reader.ReadString('\n')
	}

	if err := l.DeleteCategory(name, mergeTarget); err != nil {
		return err
	}

	pterm.Success.Printfln("Deleted category %q", name)

	return nil
}

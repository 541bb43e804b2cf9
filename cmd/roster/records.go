package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/roster"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := roster.RecordFilter{Limit: c.Limit}
	if c.Name != "" {
		filter.PersonName = &c.Name
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", roster.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		if deps.DataUnavailable {
			fmt.Fprintln(deps.Stdout, "No records loaded. Check the data file path.")
			return nil
		}
		fmt.Fprintln(deps.Stdout, "No records found.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "DEGREE", "INSTITUTION", "YEAR", "EMERITUS", "ADMIN")
	for _, r := range records {
		t.Row(
			strconv.Itoa(r.Position),
			r.DisplayName(),
			r.DisplayDegree(),
			r.DisplayInstitution(),
			r.DisplayYear(),
			yesNo(r.IsEmeritus),
			yesNo(r.IsAdministration),
		)
	}
	fmt.Fprintln(deps.Stdout, t.Render())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

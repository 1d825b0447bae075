package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"multiselect/internal/config"
)

type ReportEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Report struct {
	Accepted bool          `json:"accepted"`
	Selected []ReportEntry `json:"selected"`
}

// NewReport captures the final selection of a model.
func NewReport(m Model) Report {
	r := Report{Accepted: m.Accepted(), Selected: make([]ReportEntry, 0, m.state.Selection.Len())}
	for _, o := range m.Selected() {
		r.Selected = append(r.Selected, ReportEntry{Label: o.Label, Value: o.Value})
	}
	return r
}

// Write prints the report in one of the config output formats: plain
// writes one value per line, table a borderless table, json an object.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case config.OutputPlain, "":
		for _, e := range r.Selected {
			if _, err := fmt.Fprintln(w, e.Value); err != nil {
				return err
			}
		}
		return nil

	case config.OutputTable:
		data := make([][]string, 0, len(r.Selected))
		for i, e := range r.Selected {
			data = append(data, []string{strconv.Itoa(i + 1), e.Label, e.Value})
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "LABEL", "VALUE"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(data)
		table.Render()
		return nil

	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("unknown output format %q", format)
}

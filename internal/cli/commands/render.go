package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/timberline-data/timber/pkg/schema"
)

// renderDescription writes typing information to w in the chosen format.
func renderDescription(w io.Writer, d *schema.Description, format string) error {
	switch format {
	case "json", "yaml", "yml":
		return schema.WriteDescription(w, d, format)
	default:
		return renderDescriptionTable(w, d)
	}
}

func renderDescriptionTable(w io.Writer, d *schema.Description) error {
	if d.Name != "" {
		_, _ = fmt.Fprintf(w, "Table: %s\n", d.Name)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Logical Type", "Physical Type", "Semantic Tags", "Description"})

	for _, cd := range d.ColumnTypingInfo {
		t.AppendRow(table.Row{
			cd.Name,
			cd.LogicalType.Type,
			cd.PhysicalType.Type,
			strings.Join(cd.SemanticTags, ", "),
			cd.Description,
		})
	}
	t.Render()

	if d.Index != "" {
		_, _ = fmt.Fprintf(w, "Index: %s\n", d.Index)
	}
	if d.TimeIndex != "" {
		_, _ = fmt.Fprintf(w, "Time index: %s\n", d.TimeIndex)
	}
	_, _ = fmt.Fprintf(w, "(%d columns, %s family)\n", len(d.ColumnTypingInfo), d.LoadingInfo.TableType)
	return nil
}

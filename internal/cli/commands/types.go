package commands

import (
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/logical"
)

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered logical types",
		Long: `List every registered logical type with its standard semantic tags and
the physical storage type it requires per storage family.`,
		Example: `  # Show all logical types
  timber types

  # As JSON
  timber types --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTypes(cmd)
		},
	}
}

func runTypes(cmd *cobra.Command) error {
	cfg := getConfig(cmd)
	w := cmd.OutOrStdout()

	if cfg.OutputFormat == "json" {
		type typeInfo struct {
			Name         string            `json:"name"`
			SnakeName    string            `json:"snake_name"`
			StandardTags []string          `json:"standard_tags"`
			PhysicalType map[string]string `json:"physical_type"`
		}
		var out []typeInfo
		for _, lt := range logical.Registered() {
			physical := make(map[string]string, 3)
			for _, f := range dtype.Families() {
				physical[f.String()] = string(lt.Physical(f))
			}
			out = append(out, typeInfo{
				Name:         lt.Name(),
				SnakeName:    lt.SnakeName(),
				StandardTags: lt.StandardTags(),
				PhysicalType: physical,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Logical Type", "Standard Tags", "Native", "Distributed", "Columnar"})
	for _, lt := range logical.Registered() {
		t.AppendRow(table.Row{
			lt.Name(),
			strings.Join(lt.StandardTags(), ", "),
			lt.Physical(dtype.FamilyNative),
			lt.Physical(dtype.FamilyDistributed),
			lt.Physical(dtype.FamilyColumnar),
		})
	}
	t.Render()
	return nil
}

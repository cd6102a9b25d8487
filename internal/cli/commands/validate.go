package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/timberline-data/timber/internal/loader"
	"github.com/timberline-data/timber/pkg/frame"
	"github.com/timberline-data/timber/pkg/schema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Validate a CSV file against saved typing information",
		Long: `Load a CSV file and check it against previously saved typing information:
column presence, physical dtype consistency, and index integrity.

A version mismatch between the saved typing information and this build is
advisory: a warning is logged and the load proceeds best-effort.`,
		Example: `  # Validate against a saved schema
  timber validate orders.csv --schema orders.schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], schemaPath)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to saved typing information (.json or .yaml)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runValidate(cmd *cobra.Command, csvPath, schemaPath string) error {
	logger := getLogger(cmd)
	w := cmd.OutOrStdout()

	s, err := loadSchema(schemaPath, logger)
	if err != nil {
		return err
	}

	df, err := loader.ReadCSV(csvPath, s.Family)
	if err != nil {
		return err
	}

	// The CSV loader produces untyped object columns; coerce each column
	// the schema knows about so the dtype comparison is meaningful. A
	// column that cannot be coerced keeps its raw dtype and is reported
	// as a mismatch by the validator.
	coerceKnownColumns(df, s, logger)

	if msg := schema.InvalidMessage(df, s); msg != "" {
		_, _ = fmt.Fprintln(w, msg)
		return fmt.Errorf("schema validation failed for %s", csvPath)
	}

	_, _ = fmt.Fprintln(w, "schema valid")
	return nil
}

func loadSchema(path string, logger *slog.Logger) (*schema.TableSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	d, err := schema.ReadDescription(f, descriptionFormat(path))
	if err != nil {
		return nil, err
	}

	s, warning, err := schema.FromDescription(d)
	if err != nil {
		return nil, err
	}
	if warning != nil {
		logger.Warn(warning.Message(), "kind", string(warning.Kind))
	}
	return s, nil
}

func coerceKnownColumns(df *frame.DataFrame, s *schema.TableSchema, logger *slog.Logger) {
	for _, cs := range s.Columns {
		col, ok := df.Column(cs.Name)
		if !ok {
			continue
		}
		coerced, err := frame.Coerce(col, cs.LogicalType, df.Family())
		if err != nil {
			logger.Debug("column could not be coerced", "column", cs.Name, "error", err)
			continue
		}
		_ = df.SetColumn(coerced)
	}
	if s.Index != "" && df.Family().SupportsIndexInspection() {
		if col, ok := df.Column(s.Index); ok {
			_ = df.SetIndex(col.Values())
		}
	}
}

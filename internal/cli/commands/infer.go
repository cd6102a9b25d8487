package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timberline-data/timber/internal/loader"
	"github.com/timberline-data/timber/pkg/inference"
	"github.com/timberline-data/timber/pkg/schema"
)

// NewInferCommand creates the infer command.
func NewInferCommand() *cobra.Command {
	var (
		name         string
		index        string
		timeIndex    string
		logicalTypes []string
		savePath     string
		noStandard   bool
	)

	cmd := &cobra.Command{
		Use:   "infer <file.csv>",
		Short: "Infer logical types for the columns of a CSV file",
		Long: `Load a CSV file, infer a logical type for every column (or apply explicit
overrides), and print the resulting typing information.`,
		Example: `  # Infer all column types
  timber infer orders.csv

  # Designate an index and override one column
  timber infer orders.csv --index id --logical-type amount=Double

  # Save the typing information for later validation
  timber infer orders.csv --index id --save orders.schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd, args[0], inferOptions{
				name:         name,
				index:        index,
				timeIndex:    timeIndex,
				logicalTypes: logicalTypes,
				savePath:     savePath,
				noStandard:   noStandard,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name to identify the table")
	cmd.Flags().StringVar(&index, "index", "", "column to designate as the index")
	cmd.Flags().StringVar(&timeIndex, "time-index", "", "column to designate as the time index")
	cmd.Flags().StringArrayVar(&logicalTypes, "logical-type", nil, "column=Type overrides (repeatable)")
	cmd.Flags().StringVar(&savePath, "save", "", "write the typing information to a file (.json or .yaml)")
	cmd.Flags().BoolVar(&noStandard, "no-standard-tags", false, "do not apply the standard tags implied by logical types")

	return cmd
}

type inferOptions struct {
	name         string
	index        string
	timeIndex    string
	logicalTypes []string
	savePath     string
	noStandard   bool
}

func runInfer(cmd *cobra.Command, path string, opts inferOptions) error {
	cfg := getConfig(cmd)
	logger := getLogger(cmd)

	df, err := loader.ReadCSV(path, cfg.StorageFamily())
	if err != nil {
		return err
	}

	overrides, err := parseTypeOverrides(opts.logicalTypes)
	if err != nil {
		return err
	}

	inf := inference.New(cfg.Inference.ToInference(), logger)
	s, err := schema.Capture(df, schema.CaptureOptions{
		Name:           opts.name,
		Index:          opts.index,
		TimeIndex:      opts.timeIndex,
		LogicalTypes:   overrides,
		NoStandardTags: opts.noStandard,
	}, inf)
	if err != nil {
		return fmt.Errorf("failed to capture typing information: %w", err)
	}

	d := schema.ToDescription(df, s)

	if opts.savePath != "" {
		if err := saveDescription(opts.savePath, d); err != nil {
			return err
		}
		logger.Debug("typing information saved", "path", opts.savePath)
	}

	return renderDescription(cmd.OutOrStdout(), d, cfg.OutputFormat)
}

func parseTypeOverrides(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		column, typeName, ok := strings.Cut(pair, "=")
		if !ok || column == "" || typeName == "" {
			return nil, fmt.Errorf("invalid --logical-type %q: expected column=Type", pair)
		}
		overrides[column] = typeName
	}
	return overrides, nil
}

func saveDescription(path string, d *schema.Description) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return schema.WriteDescription(f, d, descriptionFormat(path))
}

// descriptionFormat picks the serialization format from a file extension.
func descriptionFormat(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

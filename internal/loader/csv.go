// Package loader reads delimited files into untyped DataFrames ready for
// type inference. It owns no typing logic itself.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/frame"
)

// nullTokens are cell values treated as nulls when reading delimited text.
var nullTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
}

// ReadCSV reads a CSV file with a header row into a DataFrame of untyped
// object columns. Cell values stay raw strings; null tokens become nulls.
func ReadCSV(path string, family dtype.Family) (*frame.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	df, err := Read(f, family)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return df, nil
}

// Read reads CSV content with a header row from r.
func Read(r io.Reader, family dtype.Family) (*frame.DataFrame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	values := make([][]any, len(header))
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", row, len(record), len(header))
		}
		for i, cell := range record {
			if nullTokens[cell] {
				values[i] = append(values[i], nil)
			} else {
				values[i] = append(values[i], cell)
			}
		}
		row++
	}

	columns := make([]*frame.Column, len(header))
	for i, name := range header {
		columns[i] = frame.NewColumn(name, dtype.Object, values[i])
	}
	return frame.NewDataFrame(family, columns...)
}

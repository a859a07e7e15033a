package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/caremap/healthdesert/pkg/errors"
)

// Dataset is the loaded tabular facility data: the header columns and one
// Row per facility.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// Load reads the dataset at path, dispatching on the file extension.
// Spreadsheets (.xlsx, .xlsm) go through excelize, everything else is
// treated as CSV.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV reads a CSV dataset. The first record is the header; ragged rows
// are tolerated and short rows leave trailing columns empty.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to open dataset %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to parse dataset %s", path), err)
	}

	return fromRecords(records)
}

// LoadXLSX reads the first sheet of a spreadsheet as the dataset.
func LoadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to open spreadsheet %s", path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewValidationError(fmt.Sprintf("spreadsheet %s has no sheets", path))
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to read sheet %s", sheet), err)
	}

	return fromRecords(records)
}

func fromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, apperrors.NewValidationError("dataset is empty")
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.TrimSpace(c)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("dataset has a header but no data rows")
	}

	return &Dataset{Columns: columns, Rows: rows}, nil
}

// Package tabular reads and writes datasets as delimited text or Excel
// workbooks. It performs the initial load I/O for the engine; everything
// downstream of it operates on in-memory views.
package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"goattrition/domain/core"
	"goattrition/domain/table"
)

// DataReader loads Excel and CSV files into datasets
type DataReader struct{}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader() *DataReader {
	return &DataReader{}
}

// Load reads the source file into a dataset. The first row is the header;
// a source without one fails with a load error. Zero data rows is a valid
// dataset, not an error.
func (r *DataReader) Load(ctx context.Context, source string) (*table.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(source); err != nil {
		return nil, core.NewLoadError(source, err)
	}

	start := time.Now()
	var (
		ds  *table.Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(source)) {
	case ".xlsx", ".xls":
		ds, err = r.loadExcel(source)
	default:
		ds, err = r.loadCSV(source)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[DataReader] Loaded %s in %.2fms (%d rows, %d fields)",
		source, float64(time.Since(start).Nanoseconds())/1e6, ds.RowCount(), ds.FieldCount())
	return ds, nil
}

func (r *DataReader) loadCSV(source string) (*table.Dataset, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, core.NewLoadError(source, err)
	}
	defer file.Close()

	ds, err := ReadCSV(datasetName(source), file)
	if err != nil {
		return nil, fmt.Errorf("%w (source %s)", err, source)
	}
	return ds, nil
}

func (r *DataReader) loadExcel(source string) (*table.Dataset, error) {
	f, err := excelize.OpenFile(source)
	if err != nil {
		return nil, core.NewLoadError(source, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w (source %s)", core.ErrEmptySource, source)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewLoadError(source, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w (source %s)", core.ErrEmptySource, source)
	}

	return buildDataset(datasetName(source), rows[0], rows[1:]), nil
}

// ReadCSV parses delimited text into a dataset. It is the codec the export
// writer round-trips against.
func ReadCSV(name string, r io.Reader) (*table.Dataset, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		// Ragged records and bare quotes both land here
		return nil, fmt.Errorf("%w: %v", core.ErrNotTabular, err)
	}
	if len(records) == 0 {
		return nil, core.ErrEmptySource
	}
	return buildDataset(name, records[0], records[1:]), nil
}

// buildDataset trims cells and assembles the dataset. Trimming happens once
// at load so view cells, aggregates and exports all see the same canonical
// value.
func buildDataset(name string, header []string, rows [][]string) *table.Dataset {
	cleanHeader := make([]string, len(header))
	for i, h := range header {
		cleanHeader[i] = strings.TrimSpace(h)
	}
	cleanRows := make([][]string, len(rows))
	for i, row := range rows {
		clean := make([]string, len(row))
		for j, cell := range row {
			clean[j] = strings.TrimSpace(cell)
		}
		cleanRows[i] = clean
	}
	return table.New(name, cleanHeader, cleanRows)
}

func datasetName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

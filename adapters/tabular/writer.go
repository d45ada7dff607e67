package tabular

import (
	"bytes"
	"encoding/csv"

	"goattrition/domain/table"
)

// ExportCSV serializes a view as delimited text in an in-memory buffer.
// The header row equals the view's column order and fields containing the
// delimiter, a quote character or a line break are quoted with embedded
// quotes doubled, so re-loading the buffer through ReadCSV reproduces the
// view's row content exactly.
func ExportCSV(view *table.View) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(view.Header()); err != nil {
		return nil, err
	}
	for i := 0; i < view.Len(); i++ {
		if err := w.Write(view.Row(i)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM makes Excel open the file with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a UTF-8 CSV with a BOM prefix: one header row followed by
// the data rows.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

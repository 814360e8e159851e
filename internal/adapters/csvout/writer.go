// Package csvout writes generated records as UTF-8, comma-delimited CSV
// with a header row.
package csvout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
)

// ErrWidth is returned when a row does not match the header width.
var ErrWidth = errors.New("row width does not match header")

// WriteFile writes header and rows to path, replacing any existing file.
// Rows are checked against the header width before anything is written.
func WriteFile(path string, header []string, rows [][]string) (err error) {
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrWidth, i, len(row), len(header))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// KPIRows serializes records in order.
func KPIRows(recs []*model.KPIRecord) [][]string {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = KPIRow(r)
	}
	return rows
}

// HotelRows serializes stays in order.
func HotelRows(stays []model.HotelStay) [][]string {
	rows := make([][]string, len(stays))
	for i := range stays {
		rows[i] = HotelRow(&stays[i])
	}
	return rows
}

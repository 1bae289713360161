// Package export serializes selected row view-models to CSV. One escaper for
// every module: encoding/csv, which is RFC 4180 compliant (embedded commas
// and quotes survive a round-trip through any standard parser).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Column maps one CSV column: header plus a string extractor over the row
// view-model. Extractors are expected to be nil-safe; a malformed row yields
// empty cells, never a failed export.
type Column[T any] struct {
	Header  string
	Extract func(T) string
}

// WriteCSV writes one header line followed by one line per row.
func WriteCSV[T any](w io.Writer, cols []Column[T], rows []T) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			record[i] = c.Extract(row)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename stamps the export date for traceability: supplier_2026-08-29.csv.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("2006-01-02"))
}

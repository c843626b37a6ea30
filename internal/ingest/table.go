package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

// Row is one CSV record keyed by its exact header text. Vendors disagree on
// spellings across export versions, so cells are always reached through
// Lookup with an ordered alias list instead of direct indexing.
type Row map[string]string

// Table is a parsed CSV file: the header row plus every data row.
type Table struct {
	Headers []string
	Rows    []Row
}

// ReadCSV parses an uploaded CSV export. Ragged rows are tolerated (vendor
// exports occasionally drop trailing cells); a missing header row is not.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse csv")
	}
	if len(records) == 0 {
		return nil, errors.New("csv has no header row")
	}

	headers := make([]string, 0, len(records[0]))
	for _, h := range records[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Lookup returns the first present, non-empty cell among the alias
// candidates. Sentinel cells (NA, NaN, "-") count as absent.
func (r Row) Lookup(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		cell, ok := r[alias]
		if !ok || emptyCell(cell) {
			continue
		}
		return cell, true
	}
	return "", false
}

// Metric resolves the alias list to a numeric Metric. Absent cells yield the
// absent Metric; a present cell that is not numeric is a row-level error the
// orchestrator isolates.
func (r Row) Metric(aliases ...string) (pitch.Metric, error) {
	cell, ok := r.Lookup(aliases...)
	if !ok {
		return pitch.Metric{}, nil
	}
	m, ok := pitch.ParseMetric(cell)
	if !ok {
		return pitch.Metric{}, errors.Newf("column %q: cannot parse %q as number", aliases[0], cell)
	}
	return m, nil
}

func emptyCell(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "-", "--", "NA", "N/A", "na", "n/a", "null", "NULL", "NaN", "nan":
		return true
	}
	return false
}

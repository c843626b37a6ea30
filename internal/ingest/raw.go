package ingest

import (
	"math"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// RawJSON serializes the original row for audit and reprocessing. Numeric
// cells are stored as numbers, everything else as strings; absent cells and
// non-finite numbers become null so the payload is always valid JSON with
// exactly two cases per value, present-and-finite or null.
func RawJSON(headers []string, row Row) (string, error) {
	payload := make(map[string]any, len(headers))
	for _, header := range headers {
		if header == "" {
			continue
		}
		cell, ok := row[header]
		if !ok || emptyCell(cell) {
			payload[header] = nil
			continue
		}
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				payload[header] = nil
			} else {
				payload[header] = v
			}
			continue
		}
		payload[header] = cell
	}

	out, err := sonic.MarshalString(payload)
	if err != nil {
		return "", errors.Wrap(err, "serialize raw row")
	}
	return out, nil
}

package fetchers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	fxMonitor "github.com/malusev998/fx-monitor"
)

// decodeRows reads a header line followed by data records. Records shorter than the header
// only carry the columns they have; extra trailing fields are dropped. Stray quotes inside a
// field are kept literally.
func decodeRows(r io.Reader) ([]fxMonitor.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()

	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyResponse
	}

	if err != nil {
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]fxMonitor.Row, 0)

	for {
		record, err := reader.Read()

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("could not read csv record: %w", err)
		}

		row := make(fxMonitor.Row, len(header))
		for i, value := range record {
			if i >= len(header) {
				break
			}
			row[header[i]] = value
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyResponse
	}

	return rows, nil
}

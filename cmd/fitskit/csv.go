package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samcharles93/fitskit/pkg/fits"
)

// readCSVColumns reads a headed CSV and types each column by parsing every
// cell: int64 if all parse as integers, float64 if all parse as reals,
// string otherwise.
func readCSVColumns(r io.Reader) ([]fits.Column, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv has no header row")
	}
	names, rows := records[0], records[1:]
	if len(rows) == 0 {
		return nil, errors.New("csv has no data rows")
	}

	cols := make([]fits.Column, len(names))
	for j, name := range names {
		cells := make([]string, len(rows))
		for i, rec := range rows {
			cells[i] = strings.TrimSpace(rec[j])
		}
		cols[j] = typedColumn(strings.TrimSpace(name), cells)
	}
	return cols, nil
}

func typedColumn(name string, cells []string) fits.Column {
	if ints, ok := parseAll(cells, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }); ok {
		return fits.NewColumn(name, ints)
	}
	if floats, ok := parseAll(cells, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }); ok {
		return fits.NewColumn(name, floats)
	}
	return fits.NewColumn(name, cells)
}

func parseAll[T any](cells []string, parse func(string) (T, error)) ([]T, bool) {
	out := make([]T, len(cells))
	for i, s := range cells {
		v, err := parse(s)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

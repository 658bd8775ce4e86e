package frame

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// ParseCSV parses one raw CSV payload into a typed table. The first record is
// the header. Each column is inferred over all of its values: int64 when every
// non-empty cell parses as an integer, float64 when every non-empty cell
// parses as a number, string otherwise. Empty cells become null.
func ParseCSV(text string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return New(), nil
	}

	header := records[0]
	body := records[1:]

	kinds := make([]colKind, len(header))
	for i := range header {
		kinds[i] = inferColumn(body, i)
	}

	t := New(header...)
	for _, rec := range body {
		row := make(Row, len(header))
		for i, col := range header {
			if i >= len(rec) {
				continue
			}
			row[col] = convertCell(rec[i], kinds[i])
		}
		t.Append(row)
	}

	return t, nil
}

type colKind int

const (
	kindInt colKind = iota
	kindFloat
	kindString
)

// inferColumn scans every value in column i to classify it. A column with no
// non-empty values stays numeric (all nulls).
func inferColumn(records [][]string, i int) colKind {
	kind := kindInt
	for _, rec := range records {
		if i >= len(rec) {
			continue
		}
		cell := strings.TrimSpace(rec[i])
		if cell == "" {
			continue
		}
		if kind == kindInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
				continue
			}
			kind = kindFloat
		}
		if kind == kindFloat {
			if _, err := strconv.ParseFloat(cell, 64); err == nil {
				continue
			}
			kind = kindString
		}
		if kind == kindString {
			return kindString
		}
	}
	return kind
}

func convertCell(raw string, kind colKind) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	switch kind {
	case kindInt:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
	case kindFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
	}
	return raw
}

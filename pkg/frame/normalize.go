package frame

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The two temporal shapes the upstream service emits. Classification samples
// the first valid value per column, never the full column.
var dateFormats = []struct {
	pattern *regexp.Regexp
	layout  string
}{
	{regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`), "2006-1-2"},
	{regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}T\d{2}:\d{2}:\d{2}\.\d{1,6}Z$`), "2006-1-2T15:04:05.999999Z07:00"},
}

// Normalize applies the upstream response conventions to a freshly parsed
// table, in place:
//
//   - string columns whose first valid value ends with "%" (or whose name
//     does) are stripped of the suffix and converted to fractions
//   - string columns whose first valid value matches a known date shape are
//     reparsed as times; malformed cells become null rather than failing
//   - column names containing "." are flattened to "_"
//
// Normalize is invoked once per raw response with no cross-response state.
func Normalize(t *Table) error {
	for _, col := range t.Columns() {
		sample, ok := firstValidString(t, col)
		if !ok {
			continue
		}

		if strings.HasSuffix(sample, "%") || strings.HasSuffix(col, "%") {
			if err := convertPercent(t, col); err != nil {
				return err
			}
			continue
		}

		for _, df := range dateFormats {
			if df.pattern.MatchString(sample) {
				convertDates(t, col, df.layout)
				break
			}
		}
	}

	for _, col := range t.Columns() {
		if strings.Contains(col, ".") {
			t.RenameColumn(col, strings.ReplaceAll(col, ".", "_"))
		}
	}

	return nil
}

// firstValidString returns the first non-null value of a column when that
// value is a string. Columns whose first valid value is non-string were
// already typed by CSV inference and are left alone.
func firstValidString(t *Table, col string) (string, bool) {
	for _, r := range t.Rows() {
		v, ok := r[col]
		if !ok || v == nil {
			continue
		}
		s, isStr := v.(string)
		return s, isStr
	}
	return "", false
}

// convertPercent rewrites every cell of a percentage column as value/100.
// A cell that does not parse fails the conversion: percentage columns are
// expected to be uniformly shaped, unlike dates.
func convertPercent(t *Table, col string) error {
	for _, r := range t.Rows() {
		v, ok := r[col]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(FormatCell(v))
		s = strings.TrimSuffix(s, "%")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("column %s: parse percent %q: %w", col, v, err)
		}
		r[col] = f / 100.0
	}
	return nil
}

// convertDates reparses a column as times. Malformed cells become null - a
// deliberate asymmetry with session-level failures.
func convertDates(t *Table, col, layout string) {
	for _, r := range t.Rows() {
		s, ok := r[col].(string)
		if !ok {
			continue
		}
		parsed, err := time.Parse(layout, strings.TrimSpace(s))
		if err != nil {
			r[col] = nil
			continue
		}
		r[col] = parsed
	}
}

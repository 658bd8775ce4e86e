// Package analysis holds the derived-column transforms applied to an
// assembled pitch dataset. Transforms mutate the table in place, appending
// columns; rows missing a required input get 0.00 in every appended column.
package analysis

import (
	"fmt"
	"sort"
	"sync"

	"github.com/XavierBriggs/Argus/pkg/frame"
)

// Transform appends derived columns to a dataset in place
type Transform func(*frame.Table) error

var (
	mu         sync.RWMutex
	transforms = make(map[string]Transform)
)

// Register adds a named transform. Duplicate names are an error.
func Register(name string, fn Transform) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := transforms[name]; exists {
		return fmt.Errorf("transform %s is already registered", name)
	}

	transforms[name] = fn
	return nil
}

// Apply runs the named transform against the table
func Apply(name string, t *frame.Table) error {
	mu.RLock()
	fn, exists := transforms[name]
	mu.RUnlock()

	if !exists {
		return fmt.Errorf("unknown transform %s", name)
	}
	return fn(t)
}

// Names returns the registered transform names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, 0, len(transforms))
	for name := range transforms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func mustRegister(name string, fn Transform) {
	if err := Register(name, fn); err != nil {
		panic(err)
	}
}

// appendColumns registers the output columns on the table and writes the
// per-row values produced by fn, or 0.00 when fn reports the row incomplete
func appendColumns(t *frame.Table, cols []string, fn func(frame.Row) ([]float64, bool)) {
	for _, c := range cols {
		t.AddColumn(c)
	}
	for _, row := range t.Rows() {
		vals, ok := fn(row)
		if !ok {
			for _, c := range cols {
				row[c] = 0.00
			}
			continue
		}
		for i, c := range cols {
			row[c] = vals[i]
		}
	}
}

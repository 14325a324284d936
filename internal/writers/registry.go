// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqload/core/adapters"
)

// Table is one labelled set of bars, e.g. the loaded adapters.
type Table struct {
	Label string
	Bars  []adapters.Bar
}

// TableWriter renders every table to w. pretty only affects formats that
// have a compact and an indented form.
type TableWriter func(w io.Writer, tables []Table, pretty bool) error

// Writer registry (format → handler). Register in init() blocks.
var tableWriters = map[string]TableWriter{}

// RegisterTable is idempotent last-wins.
func RegisterTable(format string, fn TableWriter) { tableWriters[format] = fn }

// WriteTables dispatches to the writer registered for format.
func WriteTables(format string, w io.Writer, tables []Table, pretty bool) error {
	fn, ok := tableWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, tables, pretty)
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(tableWriters))
	for f := range tableWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

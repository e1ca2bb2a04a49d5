package codec

import (
	"strconv"
	"strings"

	"github.com/jacentio/planar/shape"
)

// CSV is the flat codec: one line per shape, the kind's fixed columns
// comma-separated, no header row. Collections of mixed kinds are never
// encoded together, so the column set is constant within a file.
type CSV struct{}

// Ext returns "csv".
func (CSV) Ext() string { return "csv" }

// Encode renders one newline-terminated line per view, columns in the
// kind's fixed order. An empty list encodes to empty text.
func (CSV) Encode(kind shape.Kind, views []shape.AttrMap) ([]byte, error) {
	cols := kind.Columns()
	var b strings.Builder
	for _, view := range views {
		fields := make([]string, len(cols))
		for i, col := range cols {
			fields[i] = strconv.Itoa(view[col])
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// Decode parses each non-empty line into a dictionary view. A line must
// carry at least as many comma-separated fields as the kind has columns
// (one trailing empty field from a terminal comma is tolerated); the
// first N fields map positionally onto the column names. Lines that are
// too short or carry a non-integer field are silently skipped, so a
// partially corrupt file still loads.
func (CSV) Decode(kind shape.Kind, data []byte) ([]shape.AttrMap, error) {
	cols := kind.Columns()
	views := []shape.AttrMap{}
	if len(cols) == 0 {
		return views, nil
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if view, ok := parseRow(line, cols); ok {
			views = append(views, view)
		}
	}
	return views, nil
}

// parseRow maps one line onto cols. ok is false when the line does not
// match the expected column pattern.
func parseRow(line string, cols []string) (shape.AttrMap, bool) {
	fields := strings.Split(line, ",")
	if fields[len(fields)-1] == "" {
		// Tolerate a terminal empty field from a trailing comma.
		fields = fields[:len(fields)-1]
	}
	if len(fields) < len(cols) {
		return nil, false
	}
	view := make(shape.AttrMap, len(cols))
	for i, col := range cols {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, false
		}
		view[col] = n
	}
	return view, true
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Field is a single labelled value of a record. The order of fields
// returned by Record.Fields is the canonical order of the record.
type Field struct {
	Name  string
	Value any
}

// Record is the uniform shape shared by every parsed entity: an ordered
// field list from which the map form and the display string are derived.
type Record interface {
	Fields() []Field
}

// RecordMap converts a record into a field-name keyed map.
func RecordMap(r Record) map[string]any {
	out := make(map[string]any, len(r.Fields()))
	for _, f := range r.Fields() {
		out[f.Name] = f.Value
	}
	return out
}

// FormatRecord renders a record as a deterministic multi-line string,
// one "name: value" line per field, preceded by a title line.
func FormatRecord(title string, r Record) string {
	var b strings.Builder
	b.WriteString(title)
	for _, f := range r.Fields() {
		b.WriteString("\n  ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(formatFieldValue(f.Value))
	}
	return b.String()
}

func formatFieldValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02 15:04:05")
	case bool:
		if val {
			return "Y"
		}
		return "N"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", v)
	}
}

package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Row is one raw dataset record keyed by column name.
type Row map[string]string

// Get returns the cleaned value of a column.
func (r Row) Get(column string) string {
	return Clean(r[column])
}

// Clean trims a raw cell value and maps the literal "null" to empty.
func Clean(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

// ParseListField parses a JSON-like list cell ( `["a","b"]`, a bare scalar,
// or malformed bracketed text) into a slice of cleaned strings.
func ParseListField(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" || raw == "[]" {
		return nil
	}

	var arr []interface{}
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		var out []string
		for _, v := range arr {
			if v == nil {
				continue
			}
			s := strings.TrimSpace(fmt.Sprintf("%v", v))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	var scalar interface{}
	if err := json.Unmarshal([]byte(raw), &scalar); err == nil && scalar != nil {
		return []string{strings.TrimSpace(fmt.Sprintf("%v", scalar))}
	}

	// Malformed JSON: strip brackets and split on the quoted separator.
	raw = strings.Trim(raw, "[]")
	var out []string
	for _, part := range strings.Split(raw, `","`) {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseOptionalInt parses a cleaned integer cell; junk or empty yields nil.
func ParseOptionalInt(raw string) *int {
	v := Clean(raw)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

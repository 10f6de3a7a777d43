package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinTextLength is the shortest trimmed text (in runes) accepted for a todo.
const MinTextLength = 2

// Todo is the domain model for a todo entry.
// Values are snapshots; the store never hands out references to its own state.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"todo"`
	Completed bool   `json:"completed"`
}

// ValidText reports whether text is long enough once surrounding whitespace is dropped.
func ValidText(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= MinTextLength
}

// Filter selects which todos a view displays. It is never stored per item.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the selectable filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter maps a filter name (case-insensitive) to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Label is the capitalised name shown on filter tabs.
func (f Filter) Label() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

package store

import "github.com/idilsaglam/todolist/internal/model"

// ActiveCount counts todos that are not completed.
func ActiveCount(items []model.Todo) int {
	n := 0
	for _, t := range items {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount counts completed todos.
func CompletedCount(items []model.Todo) int {
	return len(items) - ActiveCount(items)
}

// Filtered returns the todos visible under f, in insertion order.
// Unknown filters behave like FilterAll.
func Filtered(items []model.Todo, f model.Filter) []model.Todo {
	switch f {
	case model.FilterActive:
		return keep(items, func(t model.Todo) bool { return !t.Completed })
	case model.FilterCompleted:
		return keep(items, func(t model.Todo) bool { return t.Completed })
	default:
		return clone(items)
	}
}

// ShowBulkCheckbox reports whether the "select all" checkbox is offered.
// It disappears whenever the filtered view would be empty.
func ShowBulkCheckbox(items []model.Todo, f model.Filter) bool {
	if len(items) == 0 {
		return false
	}
	switch f {
	case model.FilterActive:
		return ActiveCount(items) > 0
	case model.FilterCompleted:
		return CompletedCount(items) > 0
	}
	return true
}

// BulkCheckboxChecked reports whether the "select all" checkbox renders checked.
// The completed view always shows it checked; otherwise it is checked when every
// todo is completed, which holds for an empty list.
func BulkCheckboxChecked(items []model.Todo, f model.Filter) bool {
	if f == model.FilterCompleted {
		return true
	}
	return ActiveCount(items) == 0
}

// Package store holds the authoritative in-memory todo list.
//
// Every mutation derives a complete replacement slice from the current items and
// commits it through SetAll, so a reader only ever observes whole snapshots.
// The store is owned by a single session and does no locking.
package store

import (
	"strconv"

	"github.com/idilsaglam/todolist/internal/model"
)

const idPrefix = "todo_"

// Store owns the ordered todo items and the id sequence.
type Store struct {
	items []model.Todo
	seq   int
}

// New returns an empty store whose first id is "todo_0".
func New() *Store {
	return &Store{items: []model.Todo{}}
}

// Add appends a new incomplete todo and advances the sequence.
// Text is taken as-is; callers validate it first.
func (s *Store) Add(text string) model.Todo {
	t := model.Todo{ID: idPrefix + strconv.Itoa(s.seq), Text: text}
	next := make([]model.Todo, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, t)
	s.SetAll(next)
	s.seq++
	return t
}

// SetAll replaces the items wholesale with a copy of items.
func (s *Store) SetAll(items []model.Todo) {
	s.items = clone(items)
}

// Rename replaces the text of the matching todo. Text shorter than
// model.MinTextLength once trimmed leaves the todo unchanged.
func (s *Store) Rename(id, text string) {
	if !model.ValidText(text) {
		return
	}
	s.update(id, func(t *model.Todo) { t.Text = text })
}

// SetCompleted sets the completed flag of the matching todo.
func (s *Store) SetCompleted(id string, completed bool) {
	s.update(id, func(t *model.Todo) { t.Completed = completed })
}

// SetAllCompleted sets the completed flag on every todo.
func (s *Store) SetAllCompleted(completed bool) {
	next := clone(s.items)
	for i := range next {
		next[i].Completed = completed
	}
	s.SetAll(next)
}

// Remove drops the matching todo.
func (s *Store) Remove(id string) {
	if s.indexOf(id) < 0 {
		return
	}
	s.SetAll(keep(s.items, func(t model.Todo) bool { return t.ID != id }))
}

// ClearCompleted drops every completed todo and reports whether the list is now empty.
func (s *Store) ClearCompleted() (empty bool) {
	s.SetAll(keep(s.items, func(t model.Todo) bool { return !t.Completed }))
	return len(s.items) == 0
}

// Items returns a copy of the current snapshot.
func (s *Store) Items() []model.Todo { return clone(s.items) }

// Get returns the todo with the given id.
func (s *Store) Get(id string) (model.Todo, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Todo{}, false
}

func (s *Store) Len() int { return len(s.items) }

// NextSequence is the number the next Add will use in its id.
func (s *Store) NextSequence() int { return s.seq }

func (s *Store) update(id string, fn func(*model.Todo)) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	next := clone(s.items)
	fn(&next[i])
	s.SetAll(next)
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clone(items []model.Todo) []model.Todo {
	out := make([]model.Todo, len(items))
	copy(out, items)
	return out
}

func keep(items []model.Todo, pred func(model.Todo) bool) []model.Todo {
	out := make([]model.Todo, 0, len(items))
	for _, t := range items {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

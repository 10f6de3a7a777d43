// Package session is the single collaborator between a front end and the todo
// store. It owns the view filter, the inline edit and input validation; every
// change to the list goes through the store's operations.
package session

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// Session lives as long as one running front end. It starts empty.
type Session struct {
	id     string
	store  *store.Store
	filter model.Filter
	logger *log.Logger

	editID string
	draft  string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; the session id is attached to every line.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New starts a session over a fresh store with the "all" filter.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		store:  store.New(),
		filter: model.FilterAll,
		logger: logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

func (s *Session) ID() string { return s.id }

// Submit adds raw as a new todo after trimming. Text shorter than
// model.MinTextLength is ignored and ok is false.
func (s *Session) Submit(raw string) (todo model.Todo, ok bool) {
	text := strings.TrimSpace(raw)
	if !model.ValidText(text) {
		s.logger.Debug("add ignored", "reason", "text too short", "len", len(text))
		return model.Todo{}, false
	}
	todo = s.store.Add(text)
	s.logger.Debug("todo added", "id", todo.ID)
	return todo, true
}

// Toggle flips the completed flag of id.
func (s *Session) Toggle(id string) {
	t, ok := s.store.Get(id)
	if !ok {
		return
	}
	s.SetCompleted(id, !t.Completed)
}

func (s *Session) SetCompleted(id string, completed bool) {
	s.store.SetCompleted(id, completed)
	s.logger.Debug("todo completion set", "id", id, "completed", completed)
}

// ToggleAll backs the "select all" checkbox: checked marks every todo
// completed, unchecked marks every todo active.
func (s *Session) ToggleAll(checked bool) {
	s.store.SetAllCompleted(checked)
	s.logger.Debug("all todos completion set", "completed", checked, "count", s.store.Len())
}

// Delete removes id, abandoning an edit of it.
func (s *Session) Delete(id string) {
	if s.editID == id {
		s.CancelEdit()
	}
	s.store.Remove(id)
	s.logger.Debug("todo removed", "id", id)
}

// BeginEdit opens the inline editor on id with its current text as the draft.
func (s *Session) BeginEdit(id string) bool {
	t, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.editID, s.draft = id, t.Text
	return true
}

// SetDraft replaces the edit draft. Ignored when no edit is open.
func (s *Session) SetDraft(text string) {
	if s.editID == "" {
		return
	}
	s.draft = text
}

// CommitEdit confirms the draft. A draft too short to be a todo keeps the editor
// open and leaves the todo as it was.
func (s *Session) CommitEdit() bool {
	if s.editID == "" {
		return false
	}
	text := strings.TrimSpace(s.draft)
	if !model.ValidText(text) {
		s.logger.Debug("edit ignored", "id", s.editID, "reason", "text too short")
		return false
	}
	s.store.Rename(s.editID, text)
	s.logger.Debug("todo renamed", "id", s.editID)
	s.editID, s.draft = "", ""
	return true
}

// CancelEdit drops any open edit, e.g. on focus loss or a click elsewhere.
func (s *Session) CancelEdit() {
	s.editID, s.draft = "", ""
}

// Editing returns the todo being edited and its draft.
func (s *Session) Editing() (id, draft string, ok bool) {
	return s.editID, s.draft, s.editID != ""
}

func (s *Session) Filter() model.Filter { return s.filter }

func (s *Session) SetFilter(f model.Filter) {
	s.filter = f
	s.logger.Debug("filter set", "filter", f)
}

// ClearCompleted drops completed todos; an emptied list resets the filter to all.
func (s *Session) ClearCompleted() {
	before := s.store.Len()
	empty := s.store.ClearCompleted()
	if s.editID != "" {
		if _, ok := s.store.Get(s.editID); !ok {
			s.CancelEdit()
		}
	}
	if empty {
		s.filter = model.FilterAll
	}
	s.logger.Debug("completed todos cleared", "removed", before-s.store.Len(), "filter", s.filter)
}

// Items is the full list in insertion order.
func (s *Session) Items() []model.Todo { return s.store.Items() }

// Visible is the list under the current filter.
func (s *Session) Visible() []model.Todo { return store.Filtered(s.store.Items(), s.filter) }

func (s *Session) ActiveCount() int { return store.ActiveCount(s.store.Items()) }

func (s *Session) CompletedCount() int { return store.CompletedCount(s.store.Items()) }

func (s *Session) ShowBulkCheckbox() bool {
	return store.ShowBulkCheckbox(s.store.Items(), s.filter)
}

func (s *Session) BulkCheckboxChecked() bool {
	return store.BulkCheckboxChecked(s.store.Items(), s.filter)
}

// ShowFooter reports whether the count/filter/clear bar is shown.
func (s *Session) ShowFooter() bool { return s.store.Len() > 0 }

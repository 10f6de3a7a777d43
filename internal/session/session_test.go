package session

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
)

func texts(items []model.Todo) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Text)
	}
	return out
}

func TestNewSession(t *testing.T) {
	s := New()
	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err)
	assert.Equal(t, model.FilterAll, s.Filter())
	assert.Empty(t, s.Items())
	assert.False(t, s.ShowFooter())
	assert.False(t, s.ShowBulkCheckbox())
	assert.True(t, s.BulkCheckboxChecked())
}

func TestSubmit(t *testing.T) {
	s := New()

	for _, raw := range []string{"", "   ", "a", " b "} {
		_, ok := s.Submit(raw)
		assert.False(t, ok, "Submit(%q)", raw)
	}
	assert.Empty(t, s.Items())

	todo, ok := s.Submit("  Buy milk  ")
	require.True(t, ok)
	assert.Equal(t, model.Todo{ID: "todo_0", Text: "Buy milk"}, todo)

	todo, ok = s.Submit("ok")
	require.True(t, ok)
	assert.Equal(t, "todo_1", todo.ID)
	assert.True(t, s.ShowFooter())
}

func TestToggleAndToggleAll(t *testing.T) {
	s := New()
	a, _ := s.Submit("one")
	s.Submit("two")

	s.Toggle(a.ID)
	assert.Equal(t, 1, s.ActiveCount())
	assert.Equal(t, 1, s.CompletedCount())
	s.Toggle(a.ID)
	assert.Equal(t, 2, s.ActiveCount())
	s.Toggle("todo_42")

	s.ToggleAll(true)
	assert.Equal(t, 0, s.ActiveCount())
	assert.True(t, s.BulkCheckboxChecked())

	s.ToggleAll(false)
	assert.Equal(t, 2, s.ActiveCount())
	assert.False(t, s.BulkCheckboxChecked())
}

func TestEdit(t *testing.T) {
	s := New()
	a, _ := s.Submit("Buy milk")

	assert.False(t, s.BeginEdit("todo_9"))
	require.True(t, s.BeginEdit(a.ID))
	id, draft, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, a.ID, id)
	assert.Equal(t, "Buy milk", draft)

	t.Run("short draft keeps editor open", func(t *testing.T) {
		s.SetDraft(" x ")
		assert.False(t, s.CommitEdit())
		_, _, ok := s.Editing()
		assert.True(t, ok)
		assert.Equal(t, []string{"Buy milk"}, texts(s.Items()))
	})

	t.Run("valid draft renames", func(t *testing.T) {
		s.SetDraft("  Buy oat milk ")
		assert.True(t, s.CommitEdit())
		_, _, ok := s.Editing()
		assert.False(t, ok)
		assert.Equal(t, []string{"Buy oat milk"}, texts(s.Items()))
	})

	t.Run("cancel discards draft", func(t *testing.T) {
		require.True(t, s.BeginEdit(a.ID))
		s.SetDraft("Something else")
		s.CancelEdit()
		assert.False(t, s.CommitEdit())
		assert.Equal(t, []string{"Buy oat milk"}, texts(s.Items()))
	})

	t.Run("draft ignored without edit", func(t *testing.T) {
		s.SetDraft("stray")
		_, draft, _ := s.Editing()
		assert.Empty(t, draft)
	})
}

func TestDeleteCancelsEdit(t *testing.T) {
	s := New()
	a, _ := s.Submit("one")
	b, _ := s.Submit("two")

	require.True(t, s.BeginEdit(b.ID))
	s.Delete(a.ID)
	_, _, ok := s.Editing()
	assert.True(t, ok)

	s.Delete(b.ID)
	_, _, ok = s.Editing()
	assert.False(t, ok)
	assert.Empty(t, s.Items())
}

func TestVisibleFollowsFilter(t *testing.T) {
	s := New()
	a, _ := s.Submit("one")
	s.Submit("two")
	s.SetCompleted(a.ID, true)

	s.SetFilter(model.FilterActive)
	assert.Equal(t, []string{"two"}, texts(s.Visible()))
	s.SetFilter(model.FilterCompleted)
	assert.Equal(t, []string{"one"}, texts(s.Visible()))
	assert.True(t, s.BulkCheckboxChecked())
	s.SetFilter(model.FilterAll)
	assert.Equal(t, []string{"one", "two"}, texts(s.Visible()))
}

func TestClearCompletedResetsFilterWhenEmpty(t *testing.T) {
	s := New()
	a, _ := s.Submit("one")
	b, _ := s.Submit("two")

	s.SetCompleted(a.ID, true)
	s.SetFilter(model.FilterCompleted)
	s.ClearCompleted()
	assert.Equal(t, model.FilterCompleted, s.Filter(), "list not empty, filter kept")
	assert.Equal(t, []string{"two"}, texts(s.Items()))

	s.SetCompleted(b.ID, true)
	require.True(t, s.BeginEdit(b.ID))
	s.ClearCompleted()
	assert.Empty(t, s.Items())
	assert.Equal(t, model.FilterAll, s.Filter())
	_, _, ok := s.Editing()
	assert.False(t, ok)
}

func TestBulkCheckboxHidesOnEmptyView(t *testing.T) {
	s := New()
	a, _ := s.Submit("one")

	s.SetFilter(model.FilterCompleted)
	assert.False(t, s.ShowBulkCheckbox())

	s.SetCompleted(a.ID, true)
	assert.True(t, s.ShowBulkCheckbox())

	s.SetFilter(model.FilterActive)
	assert.False(t, s.ShowBulkCheckbox())
}

func TestLoggerCarriesSessionID(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithLogger(logging.New(&buf, config.Log{Level: "debug", Format: "logfmt"})))
	s.Submit("Buy milk")

	out := buf.String()
	assert.Contains(t, out, "session="+s.ID())
	assert.Contains(t, out, "id=todo_0")
}

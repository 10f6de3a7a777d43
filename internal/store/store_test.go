package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

func texts(items []model.Todo) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Text)
	}
	return out
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		got := s.Add("item " + strconv.Itoa(i))
		assert.Equal(t, "todo_"+strconv.Itoa(i), got.ID)
		assert.False(t, got.Completed)
	}
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.NextSequence())
}

func TestIDsNeverReusedAfterRemove(t *testing.T) {
	s := New()
	a := s.Add("first")
	s.Add("second")
	s.Remove(a.ID)
	c := s.Add("third")

	assert.Equal(t, "todo_2", c.ID)
	assert.Equal(t, 3, s.NextSequence())

	seen := map[string]bool{}
	for _, it := range s.Items() {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	assert.Equal(t, []string{"second", "third"}, texts(s.Items()))
}

func TestRename(t *testing.T) {
	s := New()
	it := s.Add("Buy milk")

	s.Rename(it.ID, "")
	s.Rename(it.ID, "a")
	s.Rename(it.ID, "   b   ")
	got, ok := s.Get(it.ID)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", got.Text)

	s.Rename(it.ID, "ok")
	got, _ = s.Get(it.ID)
	assert.Equal(t, "ok", got.Text)

	s.Rename("todo_99", "ignored")
	assert.Equal(t, []string{"ok"}, texts(s.Items()))
	assert.Equal(t, 1, s.NextSequence())
}

func TestSetCompletedAndSetAllCompleted(t *testing.T) {
	s := New()
	a := s.Add("one")
	s.Add("two")
	s.Add("three")

	s.SetCompleted(a.ID, true)
	s.SetCompleted("missing", true)
	assert.Equal(t, 2, ActiveCount(s.Items()))

	s.SetAllCompleted(true)
	assert.Equal(t, 0, ActiveCount(s.Items()))

	s.SetAllCompleted(false)
	assert.Equal(t, s.Len(), ActiveCount(s.Items()))
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s := New()
	s.Add("one")
	s.Remove("todo_7")
	assert.Equal(t, 1, s.Len())
}

func TestClearCompleted(t *testing.T) {
	s := New()
	a := s.Add("one")
	s.Add("two")
	s.SetCompleted(a.ID, true)

	assert.False(t, s.ClearCompleted())
	assert.Equal(t, []string{"two"}, texts(s.Items()))

	s.SetAllCompleted(true)
	assert.True(t, s.ClearCompleted())
	assert.Empty(t, s.Items())
	assert.Equal(t, 2, s.NextSequence())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := New()
	s.Add("one")

	snap := s.Items()
	snap[0].Text = "mutated"
	snap[0].Completed = true

	got, _ := s.Get("todo_0")
	assert.Equal(t, "one", got.Text)
	assert.False(t, got.Completed)

	in := []model.Todo{{ID: "todo_0", Text: "x1"}}
	s.SetAll(in)
	in[0].Text = "changed later"
	got, _ = s.Get("todo_0")
	assert.Equal(t, "x1", got.Text)
}

func TestWriteJSON(t *testing.T) {
	s := New()
	s.Add("Buy milk")

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, s.Items()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "todo_0", decoded[0]["id"])
	assert.Equal(t, "Buy milk", decoded[0]["todo"])
	assert.Equal(t, false, decoded[0]["completed"])

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

// End to end walk through the common add/toggle/clear flow.
func TestAddToggleClearFlow(t *testing.T) {
	s := New()
	milk := s.Add("Buy milk")
	s.Add("Walk dog")

	assert.Equal(t, []model.Todo{
		{ID: "todo_0", Text: "Buy milk"},
		{ID: "todo_1", Text: "Walk dog"},
	}, s.Items())
	assert.Equal(t, 2, ActiveCount(s.Items()))

	s.SetCompleted(milk.ID, true)
	assert.Equal(t, 1, ActiveCount(s.Items()))
	assert.Equal(t, []string{"Buy milk"}, texts(Filtered(s.Items(), model.FilterCompleted)))

	s.ClearCompleted()
	assert.Equal(t, []string{"Walk dog"}, texts(s.Items()))
}

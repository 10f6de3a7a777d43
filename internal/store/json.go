package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/todolist/internal/model"
)

// WriteJSON writes items as an indented JSON array. Human-readable, nothing is
// ever read back.
func WriteJSON(w io.Writer, items []model.Todo) error {
	if items == nil {
		items = []model.Todo{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/ui"
)

// -------------- rendering helpers --------------

func renderSession(w io.Writer, s *session.Session, group bool) {
	t := ui.Current()
	d, p := s.CompletedCount(), s.ActiveCount()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymUnchecked), p,
		ui.C(t.Accent, "Total"), d+p,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if s.ShowBulkCheckbox() {
		box := t.BoxUnchecked
		if s.BulkCheckboxChecked() {
			box = t.BoxChecked
		}
		lines = append(lines, ui.C(t.Accent, box+" Mark all as complete"))
	}

	visible := s.Visible()
	if group {
		lines = append(lines, groupLines(visible)...)
	} else {
		lines = append(lines, flatLines(visible)...)
	}

	if s.ShowFooter() {
		lines = append(lines, "")
		lines = append(lines, footerLine(s))
	}
	ui.Panel(w, lines)
}

func footerLine(s *session.Session) string {
	t := ui.Current()
	tabs := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		label := f.Label()
		if f == s.Filter() {
			tabs = append(tabs, ui.C(t.Accent, "["+label+"]"))
		} else {
			tabs = append(tabs, ui.C(t.Muted, " "+label+" "))
		}
	}
	return fmt.Sprintf("%d item left!  %s  %s",
		s.ActiveCount(), strings.Join(tabs, ""), ui.C(t.Muted, "Clear completed"))
}

func flatLines(items []model.Todo) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		box := t.BoxUnchecked
		color := t.Muted
		text := it.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		if it.Completed {
			box, color = t.BoxChecked, t.Success
			text = ui.C(t.Done, text)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(t.Muted, fmt.Sprintf("%-7s", it.ID)), ui.C(color, box), text))
	}
	return out
}

func groupLines(items []model.Todo) []string {
	t := ui.Current()
	var active, done []model.Todo
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			active = append(active, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(t.Accent, model.FilterActive.Label()))
	if len(active) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(active)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, model.FilterCompleted.Label()))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}

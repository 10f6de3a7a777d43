package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/store"
)

// ScriptError reports a malformed script line.
type ScriptError struct {
	Line int
	Text string
	Msg  string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// ScriptOptions tune a ScriptRunner.
type ScriptOptions struct {
	Group  bool
	Logger *log.Logger
}

// ScriptRunner replays line commands against a session, the way a user would
// drive the interactive editor.
type ScriptRunner struct {
	s      *session.Session
	w      io.Writer
	opt    ScriptOptions
	logger *log.Logger
}

func NewScriptRunner(s *session.Session, w io.Writer, opt ScriptOptions) *ScriptRunner {
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &ScriptRunner{s: s, w: w, opt: opt, logger: logger}
}

// Session exposes the session being driven.
func (r *ScriptRunner) Session() *session.Session { return r.s }

// Run executes every line of in. It stops at the first malformed line.
func (r *ScriptRunner) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.exec(line); err != nil {
			return &ScriptError{Line: n, Text: line, Msg: err.Error()}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	r.logger.Debug("script finished", "lines", n, "items", len(r.s.Items()))
	return nil
}

func (r *ScriptRunner) exec(line string) error {
	fields := strings.Fields(line)
	cmd, a := fields[0], fields[1:]

	switch cmd {
	case "add":
		if len(a) == 0 {
			return fmt.Errorf("usage: add <text...>")
		}
		// keep inner spacing as typed
		if _, ok := r.s.Submit(strings.TrimSpace(line[len(cmd):])); !ok {
			r.logger.Debug("script add ignored", "text", line[len(cmd):])
		}

	case "toggle", "done", "undone":
		if len(a) != 1 {
			return fmt.Errorf("usage: %s <id>", cmd)
		}
		switch cmd {
		case "toggle":
			r.s.Toggle(a[0])
		case "done":
			r.s.SetCompleted(a[0], true)
		default:
			r.s.SetCompleted(a[0], false)
		}

	case "edit":
		if len(a) < 1 {
			return fmt.Errorf("usage: edit <id> <text...>")
		}
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line[len(cmd):]), a[0]))
		if !r.s.BeginEdit(a[0]) {
			return nil
		}
		r.s.SetDraft(text)
		if !r.s.CommitEdit() {
			r.s.CancelEdit()
		}

	case "rm":
		if len(a) != 1 {
			return fmt.Errorf("usage: rm <id>")
		}
		r.s.Delete(a[0])

	case "all":
		if len(a) != 1 || (a[0] != "on" && a[0] != "off") {
			return fmt.Errorf("usage: all on|off")
		}
		if r.s.ShowBulkCheckbox() {
			r.s.ToggleAll(a[0] == "on")
		}

	case "filter":
		if len(a) != 1 {
			return fmt.Errorf("usage: filter all|active|completed")
		}
		f, err := model.ParseFilter(a[0])
		if err != nil {
			return err
		}
		r.s.SetFilter(f)

	case "clear":
		if len(a) != 0 {
			return fmt.Errorf("usage: clear")
		}
		r.s.ClearCompleted()

	case "ls":
		if len(a) != 0 {
			return fmt.Errorf("usage: ls")
		}
		r.Print()

	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}

// Print renders the visible list in a panel.
func (r *ScriptRunner) Print() {
	renderSession(r.w, r.s, r.opt.Group)
}

// WriteJSON writes the full list, ignoring the filter.
func (r *ScriptRunner) WriteJSON() error {
	return store.WriteJSON(r.w, r.s.Items())
}

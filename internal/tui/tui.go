// Package tui is the interactive Bubble Tea front end over a session.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configure the program.
type Options struct {
	AltScreen bool
	CharLimit int
	Logger    *log.Logger
}

// listItem adapts a todo snapshot to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) FilterValue() string { return i.todo.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	s *session.Session
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Text
	if it.todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	if id, _, editing := d.s.Editing(); editing && id == it.todo.ID {
		text = accentStyle.Render("✎ ") + text
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type keyMap struct {
	Quit       key.Binding
	Add        key.Binding
	Edit       key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	ToggleAll  key.Binding
	NextFilter key.Binding
	All        key.Binding
	Active     key.Binding
	Completed  key.Binding
	Clear      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		ToggleAll:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle all")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
		All:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.NextFilter}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.ToggleAll,
		k.NextFilter, k.All, k.Active, k.Completed, k.Clear, k.Quit}
}

// Model renders a session and turns key presses into session operations.
type Model struct {
	s      *session.Session
	list   list.Model
	keys   keyMap
	logger *log.Logger

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // shared text input model (used for add & edit)

	width, height int
}

// NewModel builds the model for s.
func NewModel(s *session.Session, opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	keys := defaultKeyMap()

	l := list.New(nil, itemDelegate{s: s}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = opt.CharLimit

	m := Model{
		s:      s,
		list:   l,
		keys:   keys,
		logger: logger,
		ti:     ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(s *session.Session, opt Options) error {
	progOpts := []tea.ProgramOption{tea.WithReportFocus(), tea.WithMouseCellMotion()}
	if opt.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(NewModel(s, opt), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil
	case tea.BlurMsg:
		// losing focus dismisses an inline edit like clicking elsewhere
		if m.editing() {
			m.s.CancelEdit()
			m.closeInput()
		}
		return m, nil
	case tea.MouseMsg:
		if m.editing() && msg.Action == tea.MouseActionPress {
			m.s.CancelEdit()
			m.closeInput()
			return m, nil
		}
	}

	if m.adding {
		return m.updateAdd(msg)
	}
	if m.editing() {
		return m.updateEdit(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "What needs to be done?"
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Edit):
			if it, ok := m.selected(); ok && m.s.BeginEdit(it.ID) {
				m.ti.SetValue(it.Text)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit todo..."
				m.refresh()
				cmd := m.ti.Focus()
				return m, cmd
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				m.s.Toggle(it.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.selected(); ok {
				m.s.Delete(it.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleAll):
			if m.s.ShowBulkCheckbox() {
				m.s.ToggleAll(!m.s.BulkCheckboxChecked())
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextFilter):
			return m.setFilter(m.s.Filter().Next()), nil
		case key.Matches(msg, m.keys.All):
			return m.setFilter(model.FilterAll), nil
		case key.Matches(msg, m.keys.Active):
			return m.setFilter(model.FilterActive), nil
		case key.Matches(msg, m.keys.Completed):
			return m.setFilter(model.FilterCompleted), nil
		case key.Matches(msg, m.keys.Clear):
			m.s.ClearCompleted()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// add mode: enter submits and keeps the input open for the next todo
func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			if _, ok := m.s.Submit(m.ti.Value()); ok {
				m.ti.SetValue("")
				m.refresh()
				if n := len(m.list.Items()); n > 0 {
					m.list.Select(n - 1)
				}
			}
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// edit mode: a too-short draft leaves the editor open
func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			if m.s.CommitEdit() {
				m.closeInput()
				m.refresh()
			}
			return m, nil
		case "esc":
			m.s.CancelEdit()
			m.closeInput()
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.s.SetDraft(m.ti.Value())
	return m, cmd
}

func (m Model) View() string {
	w, h := m.width, m.height
	reserved := 6
	if m.ti.Focused() {
		reserved += 4
	}
	if m.s.ShowFooter() {
		reserved += 2
	}
	listHeight := h - reserved
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	if len(m.list.Items()) == 0 {
		b.WriteString(mutedStyle.Render("  nothing here"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
	}
	if m.ti.Focused() {
		title := "New todo"
		if m.editing() {
			title = "Edit todo"
		}
		bar := frameStyle.BorderForeground(lipgloss.Color("12"))
		b.WriteString("\n")
		b.WriteString(bar.Render(title + "\n" + m.ti.View()))
	}
	if m.s.ShowFooter() {
		b.WriteString("\n")
		b.WriteString(m.footer())
	}
	return frameStyle.Render(b.String())
}

// Header title with live counts and the bulk checkbox
func (m Model) header() string {
	dn, pn := m.s.CompletedCount(), m.s.ActiveCount()
	line := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), dn+pn,
	)
	if m.s.ShowBulkCheckbox() {
		box := boxUnchecked
		if m.s.BulkCheckboxChecked() {
			box = boxChecked
		}
		line = accentStyle.Render(box) + " " + line
	}
	return line
}

func (m Model) footer() string {
	tabs := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		if f == m.s.Filter() {
			tabs = append(tabs, activeTabStyle.Render(f.Label()))
		} else {
			tabs = append(tabs, tabStyle.Render(f.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		fmt.Sprintf("%d item left!", m.s.ActiveCount()),
		"   ",
		strings.Join(tabs, " "),
		"   ",
		mutedStyle.Render("Clear completed (c)"),
	)
}

func (m *Model) setFilter(f model.Filter) Model {
	m.s.SetFilter(f)
	m.refresh()
	m.list.Select(0)
	return *m
}

// refresh reloads the visible todos from the session.
func (m *Model) refresh() {
	visible := m.s.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, listItem{todo: t})
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) closeInput() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) editing() bool {
	_, _, ok := m.s.Editing()
	return ok
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

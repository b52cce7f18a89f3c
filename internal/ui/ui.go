// Package ui is the interactive terminal task tracker.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/service"
	"tasktrack/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61AFEF"))
	currentStyle  = lipgloss.NewStyle().Faint(true)
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	filterLabels  = map[task.Filter]string{task.All: "All", task.Active: "Active", task.Completed: "Completed"}
	filterHotkeys = map[string]task.Filter{"1": task.All, "2": task.Active, "3": task.Completed}
)

// Model is the bubbletea model of one session. Every key that changes the
// collection goes through the session and then recomputes the visible view.
type Model struct {
	sess   *service.Session
	view   []task.Task
	cursor int
	mode   mode
	input  textinput.Model
	status string
}

// New creates a model showing the session's current view.
func New(sess *service.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a new task"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		sess:   sess,
		input:  ti,
		mode:   modeList,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}
	m.refresh()
	return m
}

// Run runs the tracker on in/out until the user quits or ctx is cancelled.
func Run(ctx context.Context, sess *service.Session, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(New(sess),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-20, 10)
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		added, ok := m.sess.Add(m.input.Value())
		if !ok {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.status = fmt.Sprintf("Added task #%d", added.ID)
		m.refresh()
		m.focus(added.ID)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.view))
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.view))
	case "a":
		m.mode = modeAdd
		m.status = "Type a title and press Enter (Esc cancels)"
		cmd := m.input.Focus()
		return m, cmd
	case " ", "x":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.sess.Toggle(t.ID)
		if t.Completed {
			m.status = fmt.Sprintf("Reopened #%d", t.ID)
		} else {
			m.status = fmt.Sprintf("Completed #%d", t.ID)
		}
		m.refresh()
	case "d", "delete":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.sess.Remove(t.ID)
		m.status = fmt.Sprintf("Deleted #%d", t.ID)
		m.refresh()
	case "tab", "f":
		m.setFilter(m.sess.Filter.Next())
	case "1", "2", "3":
		m.setFilter(filterHotkeys[key])
	}
	return m, nil
}

func (m *Model) setFilter(f task.Filter) {
	m.sess.Filter = f
	m.status = "Showing " + strings.ToLower(filterLabels[f]) + " tasks"
	m.refresh()
}

// refresh recomputes the visible tasks and keeps the cursor inside them.
func (m *Model) refresh() {
	m.view = m.sess.View()
	m.cursor = clampCursor(m.cursor, len(m.view))
}

// focus moves the cursor to the task with id if it is visible.
func (m *Model) focus(id int) {
	for i, t := range m.view {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) selected() (task.Task, bool) {
	if len(m.view) == 0 {
		return task.Task{}, false
	}
	return m.view[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Task Tracker"))
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(helpStyle.Render("(a) Add Task"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderFilters(m.sess.Filter))
	b.WriteString("\n\n")

	if len(m.view) == 0 {
		b.WriteString(emptyStyle.Render("No tasks to show."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move • a add • space toggle • d delete • tab/1-3 filter • q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderFilters draws the selector buttons; the current one is shown disabled.
func renderFilters(current task.Filter) string {
	parts := make([]string, len(task.Filters))
	for i, f := range task.Filters {
		if f == current {
			parts[i] = currentStyle.Render("[" + filterLabels[f] + "]")
		} else {
			parts[i] = filterStyle.Render(" " + filterLabels[f] + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, t := range m.view {
		cursor := " "
		if i == m.cursor && m.mode == modeList {
			cursor = cursorStyle.Render(">")
		}

		checkbox := "[ ]"
		title := t.Title
		if t.Completed {
			checkbox = "[x]"
			title = doneStyle.Render(t.Title)
		}

		fmt.Fprintf(&b, "%s %s %s\n", cursor, checkbox, title)
	}
	return b.String()
}

func clampCursor(cur, n int) int {
	if n == 0 || cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

// Package tui is the terminal rendition of the two panes, built on
// bubbletea and sharing the selection synchronizer with the GTK frontend.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"treeview/internal/config"
	"treeview/internal/idle"
	"treeview/internal/selection"
	"treeview/internal/store"
)

var (
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// idleMsg asks the model to run deferred work.
type idleMsg struct{}

type Model struct {
	title  string
	logger *slog.Logger

	left  *leftPane
	right *rightPane
	sync  *selection.Synchronizer
	queue *idle.Queue

	status string
	err    error
}

// statusReporter defers error display to the next idle message, the way the
// GTK frontend defers its dialog.
type statusReporter struct {
	m *Model
}

func (r statusReporter) ReportError(err error) {
	r.m.queue.Post(func() { r.m.err = err })
}

func NewModel(cfg *config.Config, loader store.IconLoader, logger *slog.Logger) *Model {
	m := &Model{title: cfg.Title, logger: logger, queue: &idle.Queue{}}
	panes := store.BuildPanes(cfg.Roots, loader, cfg.ImageName(), statusReporter{m}, logger)

	m.left = newLeftPane(panes.Left)
	m.right = &rightPane{tree: panes.Right, selected: -1}
	m.sync = selection.NewSynchronizer(m.right, logger)
	m.status = "↑/↓ move  →/← expand/collapse  esc clear  q quit"
	return m
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return idleMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case idleMsg:
		m.queue.Drain()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	changed := false
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "down", "j":
		changed = m.left.move(1)
	case "up", "k":
		changed = m.left.move(-1)
	case "right", "l":
		m.left.expand()
	case "left", "h":
		changed = m.left.collapse()
	case "esc":
		changed = m.left.clear()
	}
	if changed {
		m.sync.Handle(m.left)
	}
	return nil
}

// Err is the last reported error, if any.
func (m *Model) Err() error { return m.err }

// RightSelection is the selected top-level index of the right pane.
func (m *Model) RightSelection() (int, bool) {
	return m.right.selected, m.right.selected >= 0
}

func (m *Model) View() string {
	leftView := paneStyle.Render(m.renderLeft())
	rightView := paneStyle.Render(m.renderRight())

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftView, " ", rightView))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

func (m *Model) renderLeft() string {
	lines := make([]string, 0, len(m.left.visible))
	for i, v := range m.left.visible {
		marker := " "
		if len(v.row.Children()) > 0 {
			marker = "▸"
			if m.left.expanded[v.path.String()] {
				marker = "▾"
			}
		}
		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", v.path.Depth()-1), marker, v.row.Value.Label)
		if i == m.left.cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRight() string {
	lines := []string{titleStyle.Render("Picture")}
	for i, row := range m.right.tree.Roots() {
		icon := " "
		if row.Value.Icon != nil {
			icon = "◉"
		}
		line := icon + " " + row.Value.Label
		if i == m.right.selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Run starts the terminal program and blocks until it quits.
func Run(cfg *config.Config, loader store.IconLoader, logger *slog.Logger) error {
	_, err := tea.NewProgram(NewModel(cfg, loader, logger), tea.WithAltScreen()).Run()
	return err
}

// Package tui is the terminal checkplot browser. It drives the same
// navigation state machine as the web viewer: arrow keys map to
// prev/next, the sidebar list selection always mirrors the current
// index, and the detail pane is re-rendered once per transition from
// the browser snapshot.
package tui

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renlliang3/astrobase/internal/browser"
	"github.com/renlliang3/astrobase/internal/manifest"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	paneStyle   = lipgloss.NewStyle().Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(1, 2)
)

// item adapts a manifest entry to the bubbles list.
type item struct {
	entry manifest.Entry
}

func (i item) Title() string       { return i.entry.Label() }
func (i item) Description() string { return i.entry.File }
func (i item) FilterValue() string { return i.entry.Label() }

// openedMsg reports the result of opening the current image externally.
type openedMsg struct{ err error }

// Model is the TUI application state.
type Model struct {
	browser  *browser.Browser
	list     list.Model
	title    string
	imageDir string
	status   string
	width    int
	height   int
}

// New creates the TUI over an already-loaded manifest. imageDir is used
// to resolve entry filenames when opening images externally.
func New(title, imageDir string, m manifest.Manifest) Model {
	items := make([]list.Item, len(m))
	for i, e := range m {
		items[i] = item{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	// Filtering would re-index the visible items and break the
	// list-position = manifest-position mapping the browser relies on.
	l.SetFilteringEnabled(false)

	return Model{
		browser:  browser.New(m),
		list:     l,
		title:    title,
		imageDir: imageDir,
	}
}

// Browser exposes the underlying state machine for tests.
func (m Model) Browser() *browser.Browser { return m.browser }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/3, msg.Height-2)
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("open failed: %v", msg.err)
		} else {
			m.status = "opened in external viewer"
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "n":
			if _, err := m.browser.Next(); err == nil {
				m.syncList()
			}
			m.status = ""
			return m, nil
		case "left", "h", "p":
			if _, err := m.browser.Prev(); err == nil {
				m.syncList()
			}
			m.status = ""
			return m, nil
		case "enter":
			return m, m.openCurrent()
		}
	}

	// Everything else (up/down, paging) goes to the list; the browser
	// then follows the list selection.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if idx := m.list.Index(); idx >= 0 {
		m.browser.Goto(idx)
	}
	return m, cmd
}

// syncList moves the list selection to the browser's current index, so
// exactly one sidebar item is marked active.
func (m *Model) syncList() {
	view := m.browser.Snapshot()
	if view.ActiveIndex >= 0 {
		m.list.Select(view.ActiveIndex)
	}
}

func (m Model) openCurrent() tea.Cmd {
	view := m.browser.Snapshot()
	if view.Total == 0 {
		return nil
	}
	path := filepath.Join(m.imageDir, filepath.FromSlash(view.Current.File))
	return func() tea.Msg {
		return openedMsg{err: openFile(path)}
	}
}

func (m Model) View() string {
	view := m.browser.Snapshot()

	var detail string
	if view.Total == 0 {
		detail = paneStyle.Render(
			titleStyle.Render(m.title) + "\n\n" +
				statusStyle.Render("No checkplots in manifest"))
	} else {
		lines := titleStyle.Render(m.title) + "\n\n" +
			labelStyle.Render("object   ") + valueStyle.Render(view.Current.Label()) + "\n" +
			labelStyle.Render("file     ") + valueStyle.Render(view.Current.File) + "\n" +
			labelStyle.Render("position ") + valueStyle.Render(view.Position)
		if m.status != "" {
			lines += "\n\n" + statusStyle.Render(m.status)
		}
		detail = paneStyle.Render(lines)
	}

	help := helpStyle.Render("←/→ navigate · ↑/↓ list · enter open · q quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), detail) + "\n" + help
}

// openFile opens a file with the platform's default handler.
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renlliang3/astrobase/internal/manifest"
)

func testModel(files ...string) Model {
	m := make(manifest.Manifest, len(files))
	for i, f := range files {
		m[i] = manifest.Entry{File: f}
	}
	model := New("test", "/plots", m)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestArrowKeysNavigate(t *testing.T) {
	m := testModel("a.png", "b.png", "c.png")

	updated, _ := m.Update(key(tea.KeyRight))
	m = updated.(Model)
	if idx := m.Browser().Snapshot().ActiveIndex; idx != 1 {
		t.Errorf("after right arrow, index = %d, want 1", idx)
	}

	updated, _ = m.Update(key(tea.KeyLeft))
	m = updated.(Model)
	if idx := m.Browser().Snapshot().ActiveIndex; idx != 0 {
		t.Errorf("after left arrow, index = %d, want 0", idx)
	}
}

func TestNavigationWrapsAround(t *testing.T) {
	m := testModel("a.png", "b.png", "c.png")

	updated, _ := m.Update(key(tea.KeyLeft))
	m = updated.(Model)
	view := m.Browser().Snapshot()
	if view.ActiveIndex != 2 {
		t.Errorf("left from first entry, index = %d, want 2", view.ActiveIndex)
	}
	if view.Position != "3 of 3" {
		t.Errorf("position = %q", view.Position)
	}

	for i := 0; i < 3; i++ {
		updated, _ = m.Update(key(tea.KeyRight))
		m = updated.(Model)
	}
	if idx := m.Browser().Snapshot().ActiveIndex; idx != 2 {
		t.Errorf("after full cycle, index = %d, want 2", idx)
	}
}

func TestListSelectionFollowsNavigation(t *testing.T) {
	m := testModel("a.png", "b.png", "c.png")

	updated, _ := m.Update(key(tea.KeyRight))
	m = updated.(Model)
	if m.list.Index() != m.Browser().Snapshot().ActiveIndex {
		t.Errorf("list index %d != browser index %d",
			m.list.Index(), m.Browser().Snapshot().ActiveIndex)
	}
}

func TestViewShowsPosition(t *testing.T) {
	m := testModel("checkplot-x.png", "checkplot-y.png")

	if out := m.View(); !strings.Contains(out, "1 of 2") {
		t.Errorf("view missing position indicator:\n%s", out)
	}
}

func TestEmptyManifestView(t *testing.T) {
	m := testModel()

	if out := m.View(); !strings.Contains(out, "No checkplots") {
		t.Errorf("empty view missing placeholder:\n%s", out)
	}

	// Navigation on an empty manifest is a no-op, not a crash.
	updated, _ := m.Update(key(tea.KeyRight))
	m = updated.(Model)
	if idx := m.Browser().Snapshot().ActiveIndex; idx != -1 {
		t.Errorf("empty manifest index = %d, want -1", idx)
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel("a.png")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

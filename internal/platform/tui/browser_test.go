package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/peri/internal/catalog"
)

func sendBrowser(t *testing.T, m BrowserModel, msgs ...tea.Msg) BrowserModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(BrowserModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestBrowserTabs(t *testing.T) {
	m := NewBrowserModel(catalog.MustDefault(), DefaultTheme(), 100, 40)

	if got := len(m.tabs); got != 1+int(catalog.CategoryCount) {
		t.Fatalf("tabs = %d", got)
	}
	if got := len(m.table.Rows()); got != catalog.Size {
		t.Errorf("All tab rows = %d, want %d", got, catalog.Size)
	}

	m = sendBrowser(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tabs[m.tabCursor].title != "Alkali Metal" {
		t.Errorf("tab = %q, want Alkali Metal", m.tabs[m.tabCursor].title)
	}
	if got := len(m.table.Rows()); got != 6 {
		t.Errorf("alkali rows = %d, want 6", got)
	}

	// Wraps backwards past the first tab.
	m = sendBrowser(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tabs[m.tabCursor].title != catalog.CategoryTransactinide.String() {
		t.Errorf("tab = %q, want the last category", m.tabs[m.tabCursor].title)
	}
}

func TestBrowserSelect(t *testing.T) {
	m := NewBrowserModel(catalog.MustDefault(), DefaultTheme(), 100, 40)
	m = sendBrowser(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Selected(); got != "Li" {
		t.Errorf("Selected() = %q, want Li", got)
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestBrowserQuit(t *testing.T) {
	m := NewBrowserModel(catalog.MustDefault(), DefaultTheme(), 100, 40)
	m = sendBrowser(t, m, runes("q"))
	if !m.IsQuitting() || m.Selected() != "" {
		t.Error("q should quit without a selection")
	}
}

func TestBrowserView(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"wide shows sidebar", 100, "Categories"},
		{"narrow shows tab", 60, "< All >"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBrowserModel(catalog.MustDefault(), DefaultTheme(), tt.width, 40)
			view := m.View()
			if !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q", tt.want)
			}
			if !strings.Contains(view, "Hydrogen") {
				t.Error("view missing the first row")
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Nonmetal", 10, "Nonmetal"},
		{"Alkaline Earth Metal", 8, "Alkalin."},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/peri/internal/catalog"
)

// Browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the category sidebar
	sidebarWidth       = 26 // Width of the category sidebar
)

// BrowserKeyMap defines the key bindings for the element browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Select, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev category"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next category"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev category"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open in table"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browserTab is one filter of the browser. The first tab shows everything.
type browserTab struct {
	title    string
	elements []catalog.Element
}

// BrowserModel is the Bubble Tea model for browsing the catalog as a table.
type BrowserModel struct {
	tabs        []browserTab
	tabCursor   int
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	selected    string // Symbol chosen with enter
	showSidebar bool
}

// NewBrowserModel creates a browser over the catalog.
func NewBrowserModel(c *catalog.Catalog, theme Theme, width, height int) BrowserModel {
	tabs := []browserTab{{title: "All", elements: c.All()}}
	for _, cat := range catalog.AllCategories() {
		tabs = append(tabs, browserTab{title: cat.String(), elements: c.InCategory(cat)})
	}

	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		tabs:        tabs,
		keys:        DefaultBrowserKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "No.", Width: 4},
		{Title: "Sym", Width: 4},
		{Title: "Name", Width: 14},
		{Title: "Mass", Width: 9},
		{Title: "EN", Width: 5},
	}

	// Give spare width to the name column
	tableWidth := m.width - 8 // Borders, padding and margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4 // Sidebar + border + gap
	}
	used := 0
	for _, col := range columns {
		used += col.Width + 2 // Cell padding
	}
	if spare := tableWidth - used; spare > 0 {
		columns[2].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the current tab's elements.
func (m *BrowserModel) updateTableRows() {
	elements := m.tabs[m.tabCursor].elements
	rows := make([]table.Row, len(elements))
	for i, e := range elements {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Number),
			e.Symbol,
			e.Name,
			e.MassString(),
			e.Electronegativity.String(),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// switchTab moves the tab cursor by delta, wrapping around.
func (m *BrowserModel) switchTab(delta int) {
	n := len(m.tabs)
	m.tabCursor = ((m.tabCursor+delta)%n + n) % n
	m.updateTableRows()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[1]
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("ELEMENTS - %s (%d)", m.tabs[m.tabCursor].title, len(m.tabs[m.tabCursor].elements))
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: category tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a sidebar of categories.
func (m BrowserModel) renderWideLayout() string {
	sidebarStyle := m.theme.Panel.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Categories\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, tab := range m.tabs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.tabCursor {
			cursor = "> "
			style = m.theme.SidebarActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(tab.title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())
	tableRendered := m.theme.Panel.Render(m.renderTableContent())

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the browser with the current category above
// the table.
func (m BrowserModel) renderNarrowLayout() string {
	var b strings.Builder

	tabLine := m.theme.TabActive.Render(fmt.Sprintf("< %s >", m.tabs[m.tabCursor].title))
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Panel.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.tabs[m.tabCursor].elements) == 0 {
		return m.theme.Empty.Render("No elements in this category.")
	}
	return m.table.View()
}

// Selected returns the symbol chosen with enter, if any.
func (m BrowserModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if the user left without choosing.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text on the left to center it in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n || n < 1 {
		return s
	}
	return string(runes[:n-1]) + "."
}

// RunBrowser runs the element browser.
// Returns the chosen symbol, or empty if the user quit.
func RunBrowser(c *catalog.Catalog, theme Theme, width, height int) (string, error) {
	model := NewBrowserModel(c, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

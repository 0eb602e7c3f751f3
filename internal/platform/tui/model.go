// Package tui provides the Bubble Tea integration for the viewer.
// It handles the terminal UI loop, input mapping, prompts and the
// conversion of the screen buffer to styled text.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/palette"
	"github.com/vovakirdan/peri/internal/periodic"
)

// promptKind identifies the modal prompt currently shown, if any.
type promptKind int

const (
	promptNone promptKind = iota
	promptMode
	promptSearch
)

// Options configure a viewer session.
type Options struct {
	Config        core.RuntimeConfig
	Mode          palette.Mode
	Select        string // Symbol selected at start, if any
	InfoPanel     bool
	Mouse         bool
	Theme         Theme
	Logger        *log.Logger
	ScreenshotDir string // Empty disables screenshots
}

// DefaultOptions returns options for an 80x24 terminal with no coloring.
func DefaultOptions() Options {
	return Options{
		Config:    core.DefaultConfig(),
		Mode:      palette.ModeNone,
		InfoPanel: true,
		Mouse:     true,
		Theme:     DefaultTheme(),
	}
}

// Model is the Bubble Tea model of the interactive table.
type Model struct {
	ctrl      *periodic.Controller
	renderer  *periodic.Renderer
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	input     textinput.Model
	prompt    promptKind
	theme     Theme
	logger    *log.Logger
	shotDir   string
	status    string // One-shot message shown in the status line
	statusErr bool
	quitting  bool
}

// NewModel creates a viewer over the catalog.
func NewModel(c *catalog.Catalog, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = DiscardLogger()
	}

	renderOpts := periodic.DefaultRenderOptions()
	renderOpts.InfoPanel = opts.InfoPanel

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = opts.Config.ScreenW

	input := textinput.New()
	input.Prompt = ""

	m := Model{
		ctrl:      periodic.NewController(c, opts.Mode),
		renderer:  periodic.NewRenderer(c, renderOpts),
		screen:    core.NewScreen(opts.Config.ScreenW, tableRows(opts.Config.ScreenH)),
		config:    opts.Config,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		input:     input,
		theme:     opts.Theme,
		logger:    logger,
		shotDir:   opts.ScreenshotDir,
	}

	if opts.Select != "" {
		if tr := m.ctrl.Step(periodic.SearchBySymbol(opts.Select)); !tr.Next.Valid {
			m.setError(fmt.Sprintf("no element %q", opts.Select))
		}
	}

	m.redraw()
	return m
}

// tableRows is the screen height left after the status line.
func tableRows(height int) int {
	return core.Max(height-1, 0)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("peri")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	// Let the text input receive cursor blinks while a prompt is open.
	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input outside prompts.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearStatus()

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.step(periodic.Quit())
	}

	switch action {
	case core.ActionLeft:
		return m.step(periodic.MoveLeft())
	case core.ActionRight:
		return m.step(periodic.MoveRight())
	case core.ActionUp:
		return m.step(periodic.MoveUp())
	case core.ActionDown:
		return m.step(periodic.MoveDown())
	case core.ActionDeselect:
		return m.step(periodic.Escape())
	case core.ActionColorPrompt:
		return m.openPrompt(promptMode)
	case core.ActionSearchPrompt:
		return m.openPrompt(promptSearch)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleMouse turns a left button press into a pointer selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// The full help can cover the bottom of the table.
	if !m.tableArea().Contains(msg.X, msg.Y) {
		return m, nil
	}
	return m.step(periodic.PointerDown(msg.X, msg.Y, m.scale()))
}

// tableArea is the part of the screen buffer left visible by the footer.
func (m Model) tableArea() core.Rect {
	rows := core.Min(m.screen.Height(), m.config.ScreenH-lipgloss.Height(m.footer()))
	return core.NewRect(0, 0, m.screen.Width(), core.Max(rows, 0))
}

// scale returns the largest scale at which the whole table fits the screen
// buffer, f-block included.
func (m Model) scale() int {
	return core.FitScale(m.screen.Width(), m.screen.Height())
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, tableRows(msg.Height))
	m.help.Width = msg.Width
	m.input.Width = core.Max(msg.Width-20, 1)

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height, "scale", m.scale())
	m.redraw()
	return m, nil
}

// step applies a command and redraws what it changed.
func (m Model) step(cmd periodic.Command) (tea.Model, tea.Cmd) {
	tr := m.ctrl.Step(cmd)
	if tr.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.logger.Debug("step", "cmd", cmd.Kind, "prev", tr.Prev, "next", tr.Next)
	if tr.ModeChanged {
		m.logger.Info("coloring mode changed", "mode", m.ctrl.State().Mode)
	}

	m.renderer.RenderTransition(m.screen, m.ctrl.State(), tr, m.scale())
	return m, nil
}

// redraw repaints the whole table.
func (m Model) redraw() {
	if m.screen.Empty() {
		m.logger.Debug("skipping redraw of zero-size frame", "width", m.config.ScreenW, "height", m.config.ScreenH)
		return
	}
	scale := m.scale()
	if scale == 0 {
		m.logger.Debug("terminal too small for the table", "width", m.config.ScreenW, "height", m.config.ScreenH)
	}
	m.renderer.Render(m.screen, m.ctrl.State(), scale)
}

// openPrompt shows a modal prompt in the status line.
func (m Model) openPrompt(kind promptKind) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.input.Reset()
	switch kind {
	case promptMode:
		m.input.CharLimit = 1
		m.input.Placeholder = "n/t/e"
	case promptSearch:
		m.input.CharLimit = 3
		m.input.Placeholder = "symbol"
	}
	return m, m.input.Focus()
}

// closePrompt hides the prompt without applying it.
func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

// handlePromptKey routes keys to the open prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.step(periodic.Quit())
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// The mode prompt takes a single key.
	if m.prompt == promptMode && m.input.Value() != "" {
		return m.submitPrompt()
	}
	return m, cmd
}

// submitPrompt applies the prompt's value and closes it.
func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	kind := m.prompt
	value := strings.TrimSpace(m.input.Value())
	m.closePrompt()

	if value == "" {
		return m, nil
	}

	switch kind {
	case promptMode:
		mode, err := palette.ParseMode(value)
		if err != nil {
			m.logger.Warn("unknown coloring mode", "input", value)
			m.setError(fmt.Sprintf("unknown coloring mode %q", value))
			return m, nil
		}
		return m.step(periodic.SetColoringMode(mode))

	case promptSearch:
		if _, ok := m.ctrl.Catalog().IndexOfSymbol(value); !ok {
			m.logger.Debug("search miss", "symbol", value)
			m.setError(fmt.Sprintf("no element %q", value))
			return m, nil
		}
		return m.step(periodic.SearchBySymbol(value))
	}

	return m, nil
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Error("cannot create screenshot directory", "error", err)
		m.setError("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("peri_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("cannot save screenshot", "path", path, "error", err)
		m.setError("screenshot failed")
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	rows := core.Max(m.config.ScreenH-lipgloss.Height(footer), 0)
	return renderRows(m.screen, rows) + "\n" + footer
}

// footer renders the status line: the open prompt, a message, or the
// legend of the active mode followed by key help.
func (m Model) footer() string {
	width := core.Max(m.config.ScreenW, 1)
	line := lipgloss.NewStyle().MaxWidth(width)

	switch m.prompt {
	case promptMode:
		return line.Render(m.theme.PromptLabel.Render("Coloring mode (n)one (t)ype (e)lectronegativity: ") + m.input.View())
	case promptSearch:
		return line.Render(m.theme.PromptLabel.Render("Symbol: ") + m.input.View())
	}

	if m.help.ShowAll {
		return m.theme.Help.Render(m.help.View(m.keys))
	}

	var parts []string
	if m.status != "" {
		style := m.theme.StatusText
		if m.statusErr {
			style = m.theme.StatusError
		}
		parts = append(parts, style.Render(m.status))
	} else if legend := m.legend(); legend != "" {
		parts = append(parts, legend)
	}
	parts = append(parts, m.theme.Help.Render(m.help.View(m.keys)))

	return line.Render(strings.Join(parts, "  "))
}

// legend renders the swatches of the active coloring mode.
func (m Model) legend() string {
	mode := m.ctrl.State().Mode
	entries := palette.Legend(mode)
	if len(entries) == 0 {
		return ""
	}

	swatches := make([]string, 0, len(entries)+1)
	swatches = append(swatches, m.theme.LegendTitle.Render(palette.Title(mode)+":"))
	for _, e := range entries {
		swatches = append(swatches, styleFor(cellStyle{fg: e.FG, bg: e.BG}).Render(" "+e.Label+" "))
	}
	return strings.Join(swatches, " ")
}

// State returns the current selection state.
func (m Model) State() periodic.State {
	return m.ctrl.State()
}

// Screen returns the screen buffer the model draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program for the viewer.
func Run(c *catalog.Catalog, opts Options) error {
	model := NewModel(c, opts)

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(), // Use alternate screen buffer
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

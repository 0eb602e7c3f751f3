// Package periodic contains the viewer logic: the selection state machine
// and the renderer that draws the table into a core.Screen.
// It has no terminal dependencies; the platform layer feeds it commands
// and displays the screen.
package periodic

import (
	"fmt"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/palette"
)

// Selection is an optional catalog index.
type Selection struct {
	Index int
	Valid bool
}

// NoSelection is the unselected state.
var NoSelection = Selection{}

// Selected returns a selection of index i.
func Selected(i int) Selection {
	return Selection{Index: i, Valid: true}
}

// Is reports whether the selection points at index i.
func (s Selection) Is(i int) bool {
	return s.Valid && s.Index == i
}

func (s Selection) String() string {
	if !s.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", s.Index)
}

// State is everything the renderer needs besides the catalog.
type State struct {
	Selection Selection
	Mode      palette.Mode
}

// CommandKind identifies a viewer command.
type CommandKind int

const (
	CmdEscape CommandKind = iota
	CmdMoveRight
	CmdMoveLeft
	CmdMoveDown
	CmdMoveUp
	CmdSearch
	CmdPointerDown
	CmdSetMode
	CmdQuit
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdEscape:
		return "Escape"
	case CmdMoveRight:
		return "MoveRight"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveDown:
		return "MoveDown"
	case CmdMoveUp:
		return "MoveUp"
	case CmdSearch:
		return "SearchBySymbol"
	case CmdPointerDown:
		return "PointerDown"
	case CmdSetMode:
		return "SetColoringMode"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is one input to the state machine. Only the fields relevant to
// Kind are read.
type Command struct {
	Kind  CommandKind
	Text  string       // CmdSearch
	Point core.Point   // CmdPointerDown
	Scale int          // CmdPointerDown
	Mode  palette.Mode // CmdSetMode
}

// Command constructors.
func Escape() Command    { return Command{Kind: CmdEscape} }
func MoveRight() Command { return Command{Kind: CmdMoveRight} }
func MoveLeft() Command  { return Command{Kind: CmdMoveLeft} }
func MoveDown() Command  { return Command{Kind: CmdMoveDown} }
func MoveUp() Command    { return Command{Kind: CmdMoveUp} }
func Quit() Command      { return Command{Kind: CmdQuit} }

// SearchBySymbol selects the element whose symbol matches text.
func SearchBySymbol(text string) Command {
	return Command{Kind: CmdSearch, Text: text}
}

// PointerDown selects the element under a terminal position drawn at scale.
func PointerDown(x, y, scale int) Command {
	return Command{Kind: CmdPointerDown, Point: core.Point{X: x, Y: y}, Scale: scale}
}

// SetColoringMode switches the coloring scheme.
func SetColoringMode(mode palette.Mode) Command {
	return Command{Kind: CmdSetMode, Mode: mode}
}

// Transition describes what a command changed. The caller redraws at most
// the previous and next selected cells unless the mode changed.
type Transition struct {
	Prev        Selection
	Next        Selection
	ModeChanged bool
	Quit        bool
}

// SelectionChanged reports whether the selected index moved.
func (t Transition) SelectionChanged() bool {
	return t.Prev != t.Next
}

// Apply computes the state that follows cmd. It never mutates its inputs.
// Commands that find no target leave the state unchanged.
func Apply(c *catalog.Catalog, s State, cmd Command) (State, Transition) {
	next := s
	tr := Transition{Prev: s.Selection}

	switch cmd.Kind {
	case CmdEscape:
		next.Selection = NoSelection

	case CmdMoveRight:
		if !s.Selection.Valid {
			next.Selection = Selected(0)
			break
		}
		// Wrap past the last element instead of walking off the catalog.
		next.Selection = Selected((s.Selection.Index + 1) % c.Len())

	case CmdMoveLeft:
		if !s.Selection.Valid {
			next.Selection = Selected(0)
			break
		}
		next.Selection = Selected(core.Max(s.Selection.Index-1, 0))

	case CmdMoveDown, CmdMoveUp:
		if !s.Selection.Valid {
			next.Selection = Selected(0)
			break
		}
		delta := 1
		if cmd.Kind == CmdMoveUp {
			delta = -1
		}
		if i, ok := verticalNeighbor(c, s.Selection.Index, delta); ok {
			next.Selection = Selected(i)
		}

	case CmdSearch:
		if i, ok := c.IndexOfSymbol(cmd.Text); ok {
			next.Selection = Selected(i)
		}

	case CmdPointerDown:
		cell, ok := core.ScreenToCell(cmd.Point, cmd.Scale)
		if !ok {
			break
		}
		if i, ok := c.IndexAt(cell); ok {
			next.Selection = Selected(i)
		}

	case CmdSetMode:
		next.Mode = cmd.Mode
		tr.ModeChanged = next.Mode != s.Mode

	case CmdQuit:
		tr.Quit = true
	}

	tr.Next = next.Selection
	return next, tr
}

// verticalNeighbor finds the element in the same group one period away.
func verticalNeighbor(c *catalog.Catalog, index, delta int) (int, bool) {
	e, ok := c.At(index)
	if !ok {
		return 0, false
	}
	cell := e.Cell()
	cell.Period += delta
	return c.IndexAt(cell)
}

// Controller owns the viewer state for the lifetime of a session.
// It performs no I/O.
type Controller struct {
	catalog *catalog.Catalog
	state   State
}

// NewController starts unselected in the given coloring mode.
func NewController(c *catalog.Catalog, mode palette.Mode) *Controller {
	return &Controller{
		catalog: c,
		state:   State{Selection: NoSelection, Mode: mode},
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Selected returns the currently selected element.
func (c *Controller) Selected() (catalog.Element, bool) {
	if !c.state.Selection.Valid {
		return catalog.Element{}, false
	}
	return c.catalog.At(c.state.Selection.Index)
}

// Step applies a command and returns what changed.
func (c *Controller) Step(cmd Command) Transition {
	var tr Transition
	c.state, tr = Apply(c.catalog, c.state, cmd)
	return tr
}

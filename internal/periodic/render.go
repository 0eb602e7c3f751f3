package periodic

import (
	"fmt"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/palette"
)

// Info panel placement in grid units. The panel sits in the empty block
// above the transition metals.
const (
	infoGroup     = 4
	infoGroups    = 9
	infoEndPeriod = 4
)

// RenderOptions tune the renderer.
type RenderOptions struct {
	SelectedBG core.Color // Background of the selected square
	Border     core.Color // Foreground of square borders
	InfoPanel  bool       // Draw details of the selected element
}

// DefaultRenderOptions returns the standard look.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		SelectedBG: core.ColorBlue,
		Border:     core.ColorDarkGray,
		InfoPanel:  true,
	}
}

// Renderer draws the table for a given state. It holds no state of its own
// besides the catalog and options.
type Renderer struct {
	catalog *catalog.Catalog
	opts    RenderOptions
}

// NewRenderer creates a renderer over a catalog.
func NewRenderer(c *catalog.Catalog, opts RenderOptions) *Renderer {
	return &Renderer{catalog: c, opts: opts}
}

// Render clears dst and draws every element at the given scale.
func (r *Renderer) Render(dst *core.Screen, st State, scale int) {
	dst.Clear()

	if scale <= 0 {
		renderTooSmall(dst)
		return
	}

	for i := 0; i < r.catalog.Len(); i++ {
		r.drawElement(dst, i, st, scale)
	}
	r.drawInfo(dst, st, scale)
}

// RenderTransition redraws only what tr touched. A mode change repaints
// everything since every square may change color.
func (r *Renderer) RenderTransition(dst *core.Screen, st State, tr Transition, scale int) {
	if tr.ModeChanged || scale <= 0 {
		r.Render(dst, st, scale)
		return
	}
	if !tr.SelectionChanged() {
		return
	}

	if tr.Prev.Valid {
		r.drawElement(dst, tr.Prev.Index, st, scale)
	}
	if tr.Next.Valid {
		r.drawElement(dst, tr.Next.Index, st, scale)
	}
	r.drawInfo(dst, st, scale)
}

// drawElement paints one square and its symbol.
func (r *Renderer) drawElement(dst *core.Screen, i int, st State, scale int) {
	e, ok := r.catalog.At(i)
	if !ok {
		return
	}

	fg, bg := palette.ColorFor(e, st.Mode)
	if st.Selection.Is(i) {
		bg = r.opts.SelectedBG
	}

	if core.Bordered(scale) {
		r.drawSquare(dst, core.SquareRect(e.Cell(), scale), bg)
	}

	p := core.CellToScreen(e.Cell(), scale)
	dst.DrawStyledText(p.X, p.Y, e.Symbol, fg, bg)
}

// drawSquare fills a square with bg and draws its right and bottom edges.
//
//	Fe │
//	───┘
func (r *Renderer) drawSquare(dst *core.Screen, sq core.Rect, bg core.Color) {
	border := func(ch rune) core.ScreenCell {
		return core.ScreenCell{Rune: ch, FG: r.opts.Border, BG: bg}
	}

	dst.FillRect(core.NewRect(sq.X, sq.Y, sq.W-1, sq.H-1), core.ScreenCell{Rune: ' ', BG: bg})
	dst.DrawVLine(sq.Right()-1, sq.Y, sq.H-1, border('│'))
	dst.DrawHLine(sq.X, sq.Bottom()-1, sq.W-1, border('─'))
	dst.SetCell(sq.Right()-1, sq.Bottom()-1, border('┘'))
}

// infoRect returns the area reserved for the info panel.
func infoRect(scale int) core.Rect {
	top := core.CellToScreen(core.Cell{Group: infoGroup, Period: 1}, scale)
	bottom := core.CellToScreen(core.Cell{Group: infoGroup, Period: infoEndPeriod}, scale)
	return core.NewRect(top.X, top.Y, infoGroups*scale, bottom.Y-top.Y)
}

// InfoLines returns the detail lines shown for an element.
func InfoLines(e catalog.Element) []string {
	return []string{
		fmt.Sprintf("%d - %s", e.Number, e.Symbol),
		e.Name,
		"Mass: " + e.MassString(),
		e.Category.String(),
		"Electronegativity: " + e.Electronegativity.String(),
	}
}

// drawInfo clears the panel and lists the details of the selected element,
// followed by the active coloring mode, clipped to the panel.
func (r *Renderer) drawInfo(dst *core.Screen, st State, scale int) {
	if !r.opts.InfoPanel {
		return
	}

	area := infoRect(scale)
	dst.ClearRect(area)

	var lines []string
	if st.Selection.Valid {
		if e, ok := r.catalog.At(st.Selection.Index); ok {
			lines = InfoLines(e)
		}
	}
	lines = append(lines, "Coloring: "+palette.Title(st.Mode))

	for i, line := range lines {
		if i >= area.H {
			break
		}
		dst.DrawText(area.X, area.Y+i, clip(line, area.W))
	}
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:core.Max(width, 0)])
}

// renderTooSmall shows a resize hint when not even one column per group fits.
func renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := dst.Height() / 2
	dst.DrawText((dst.Width()-len(msg))/2, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((dst.Width()-len(hint))/2, y+1, hint)
}

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/peri/internal/core"
)

// cellStyle is the color pair a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

// TerminalColor converts a core.Color to a lipgloss color. ANSI colors keep
// their palette index so the terminal theme applies; RGB colors are emitted
// as hex and degraded by lipgloss on terminals without truecolor.
func TerminalColor(c core.Color) lipgloss.TerminalColor {
	switch c.Kind {
	case core.KindANSI:
		return lipgloss.Color(strconv.Itoa(int(c.ANSI)))
	case core.KindRGB:
		rgb := colorful.Color{
			R: float64(c.RGB.R) / 255,
			G: float64(c.RGB.G) / 255,
			B: float64(c.RGB.B) / 255,
		}
		return lipgloss.Color(rgb.Hex())
	default:
		return lipgloss.NoColor{}
	}
}

// styleFor builds the lipgloss style for a color pair.
func styleFor(cs cellStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(TerminalColor(cs.fg)).
		Background(TerminalColor(cs.bg))
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return renderRows(s, s.Height())
}

// renderRows converts the first n rows of a Screen.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func renderRows(s *core.Screen, n int) string {
	n = core.Clamp(n, 0, s.Height())
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*n*2 + n)

	for y := 0; y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsDefault() && start.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

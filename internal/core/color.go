package core

import "fmt"

// ColorKind tells how a Color should be emitted by the terminal layer.
type ColorKind uint8

const (
	KindDefault ColorKind = iota // Terminal default (reset)
	KindANSI                     // One of the 16 basic ANSI colors
	KindRGB                      // 24-bit truecolor
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Color is a foreground or background color for a screen cell.
// The zero value is the terminal's default color.
type Color struct {
	Kind ColorKind
	ANSI uint8
	RGB  RGB
}

// Basic terminal colors used by the palettes and the renderer.
var (
	ColorDefault      = Color{}
	ColorBlack        = ANSIColor(0)
	ColorRed          = ANSIColor(1)
	ColorGreen        = ANSIColor(2)
	ColorYellow       = ANSIColor(3)
	ColorBlue         = ANSIColor(4)
	ColorMagenta      = ANSIColor(5)
	ColorCyan         = ANSIColor(6)
	ColorWhite        = ANSIColor(7)
	ColorDarkGray     = ANSIColor(8)
	ColorBrightYellow = ANSIColor(11)
)

// ANSIColor returns a basic ANSI color (0-15).
func ANSIColor(code uint8) Color {
	return Color{Kind: KindANSI, ANSI: code}
}

// TrueColor returns a 24-bit color.
func TrueColor(c RGB) Color {
	return Color{Kind: KindRGB, RGB: c}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Kind == KindDefault
}

// String returns a short description, mostly for logs and test failures.
func (c Color) String() string {
	switch c.Kind {
	case KindANSI:
		return fmt.Sprintf("ansi(%d)", c.ANSI)
	case KindRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "default"
	}
}

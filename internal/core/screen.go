package core

import (
	"strings"
)

// Half-block runes used to pack two pixel rows into one terminal cell.
const (
	blockUpper = '▀'
	blockLower = '▄'
	blockFull  = '█'
)

// Screen is a 2D character buffer for showing the display in a terminal.
// Each cell covers one pixel column and two pixel rows.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// ScreenForFrame creates a screen large enough to show a frame.
func ScreenForFrame(f *Frame) *Screen {
	return NewScreen(f.Width(), (f.Height()+1)/2)
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawFrame packs the frame's pixels into half-block cells.
func (s *Screen) DrawFrame(f *Frame) {
	for cy := 0; cy < s.height; cy++ {
		for x := 0; x < s.width; x++ {
			top := f.Get(x, cy*2)
			bottom := f.Get(x, cy*2+1)
			switch {
			case top && bottom:
				s.cells[cy][x] = blockFull
			case top:
				s.cells[cy][x] = blockUpper
			case bottom:
				s.cells[cy][x] = blockLower
			default:
				s.cells[cy][x] = ' '
			}
		}
	}
}

// DrawGroup rasterizes a group and overlays its text labels. Label y is
// the pixel row of the text's vertical center, as on the device.
func (s *Screen) DrawGroup(g *Group, f *Frame) {
	g.Rasterize(f)
	s.DrawFrame(f)
	for _, e := range g.elements {
		if e.Kind == ElementText {
			s.DrawText(e.X, e.Y/2, e.Text)
		}
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}

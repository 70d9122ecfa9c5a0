package core

// Frame is a monochrome pixel buffer the size of the display.
type Frame struct {
	width  int
	height int
	pix    []bool
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	return &Frame{width: width, height: height, pix: make([]bool, width*height)}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	for i := range f.pix {
		f.pix[i] = false
	}
}

// Set lights or clears a pixel. Out-of-bounds coordinates are ignored.
func (f *Frame) Set(x, y int, on bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = on
}

// Get reports whether a pixel is lit. Out-of-bounds pixels are off.
func (f *Frame) Get(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.pix[y*f.width+x]
}

// Blit ORs a bitmap into the frame at (x, y), clipping at the edges.
func (f *Frame) Blit(x, y int, b Bitmap) {
	for by := 0; by < b.H; by++ {
		for bx := 0; bx < b.W; bx++ {
			if b.At(bx, by) {
				f.Set(x+bx, y+by, true)
			}
		}
	}
}

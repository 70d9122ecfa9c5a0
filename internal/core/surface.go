package core

// Bitmap is a monochrome pixel pattern. Pix is row-major, true = lit.
type Bitmap struct {
	W, H int
	Pix  []bool
}

// NewBitmap creates an unlit bitmap.
func NewBitmap(w, h int) Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Bitmap{W: w, H: h, Pix: make([]bool, w*h)}
}

// FilledBitmap creates a bitmap with every pixel lit.
func FilledBitmap(w, h int) Bitmap {
	b := NewBitmap(w, h)
	for i := range b.Pix {
		b.Pix[i] = true
	}
	return b
}

// At reports whether the pixel at (x, y) is lit.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return false
	}
	return b.Pix[y*b.W+x]
}

// ElementID identifies an element added to a Surface.
type ElementID int

// Surface is the drawable surface the core renders into. It mirrors a
// retained display group: elements are added and removed, and the driver
// decides when to push pixels.
type Surface interface {
	// Clear removes every element.
	Clear()
	// AddText adds a text label anchored at (x, y).
	AddText(x, y int, text string) ElementID
	// AddBitmap adds a bitmap whose top-left corner is (x, y).
	AddBitmap(x, y int, bmp Bitmap) ElementID
	// Remove deletes a single element. Unknown IDs are ignored. The
	// screens and the engine redraw from Clear on every render and never
	// call it; drivers must still support it.
	Remove(id ElementID)
}

// ElementKind distinguishes text labels from bitmaps.
type ElementKind int

const (
	ElementText ElementKind = iota
	ElementBitmap
)

// Element is one entry of a Group.
type Element struct {
	ID     ElementID
	Kind   ElementKind
	X, Y   int
	Text   string
	Bitmap Bitmap
}

// Group is an in-memory Surface that keeps elements in insertion order.
// The host simulator rasterizes it; tests inspect it.
type Group struct {
	elements []Element
	nextID   ElementID
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Clear removes every element.
func (g *Group) Clear() {
	g.elements = g.elements[:0]
}

// AddText adds a text label.
func (g *Group) AddText(x, y int, text string) ElementID {
	g.nextID++
	g.elements = append(g.elements, Element{ID: g.nextID, Kind: ElementText, X: x, Y: y, Text: text})
	return g.nextID
}

// AddBitmap adds a bitmap.
func (g *Group) AddBitmap(x, y int, bmp Bitmap) ElementID {
	g.nextID++
	g.elements = append(g.elements, Element{ID: g.nextID, Kind: ElementBitmap, X: x, Y: y, Bitmap: bmp})
	return g.nextID
}

// Remove deletes the element with the given ID.
func (g *Group) Remove(id ElementID) {
	for i, e := range g.elements {
		if e.ID == id {
			g.elements = append(g.elements[:i], g.elements[i+1:]...)
			return
		}
	}
}

// Len returns the number of elements.
func (g *Group) Len() int {
	return len(g.elements)
}

// Elements returns a copy of the elements in draw order.
func (g *Group) Elements() []Element {
	out := make([]Element, len(g.elements))
	copy(out, g.elements)
	return out
}

// Texts returns the text of every label in draw order.
func (g *Group) Texts() []string {
	var out []string
	for _, e := range g.elements {
		if e.Kind == ElementText {
			out = append(out, e.Text)
		}
	}
	return out
}

// Rasterize draws every bitmap into the frame. Text labels are skipped:
// glyph rendering belongs to the display layer.
func (g *Group) Rasterize(f *Frame) {
	f.Clear()
	for _, e := range g.elements {
		if e.Kind == ElementBitmap {
			f.Blit(e.X, e.Y, e.Bitmap)
		}
	}
}

var _ Surface = (*Group)(nil)

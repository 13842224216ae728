// Package grid lays a category list out as a row-major grid of cells.
package grid

import (
	"math"

	"github.com/san-kum/rollgrid/internal/dataset"
)

// Viewport is the drawing surface size, read once at startup.
type Viewport struct {
	Width, Height float64
}

// Geometry holds the pixel measures derived from the viewport.
type Geometry struct {
	GridWidth  float64
	GridHeight float64
	CellSize   float64
	Padding    float64
	Columns    int
}

// Step is the distance between neighbouring cell origins.
func (g Geometry) Step() float64 { return g.CellSize + g.Padding }

// NewGeometry sizes the grid to a quarter of the viewport width with
// square cells of 1/200 of the width, padded by one cell.
func NewGeometry(vp Viewport) Geometry {
	w := vp.Width / 4
	size := vp.Width / 200
	g := Geometry{
		GridWidth:  w,
		GridHeight: w * 1.7,
		CellSize:   size,
		Padding:    size,
	}
	if g.Step() > 0 {
		g.Columns = int(math.Floor(w / g.Step()))
	}
	if g.Columns < 1 {
		g.Columns = 1
	}
	return g
}

// Cell is one count unit of its category.
type Cell struct {
	Index         int
	Category      string
	CategoryIndex int
	Row, Col      int
	X, Y          float64
}

type Layout struct {
	Geometry Geometry
	Cells    []Cell
	Columns  int
	Rows     int
	starts   []int
}

// Generate expands each category into Count cells, in list order, and
// assigns row-major positions wrapping at geometry.Columns.
func Generate(categories []dataset.CategoryCount, geometry Geometry) *Layout {
	cols := geometry.Columns
	if cols < 1 {
		cols = 1
	}
	total := 0
	for _, c := range categories {
		if c.Count > 0 {
			total += c.Count
		}
	}

	l := &Layout{
		Geometry: geometry,
		Cells:    make([]Cell, 0, total),
		Columns:  cols,
		starts:   make([]int, len(categories)+1),
	}
	step := geometry.Step()
	for ci, c := range categories {
		l.starts[ci] = len(l.Cells)
		for n := 0; n < c.Count; n++ {
			i := len(l.Cells)
			row, col := i/cols, i%cols
			l.Cells = append(l.Cells, Cell{
				Index:         i,
				Category:      c.Name,
				CategoryIndex: ci,
				Row:           row,
				Col:           col,
				X:             float64(col) * step,
				Y:             float64(row) * step,
			})
		}
	}
	l.starts[len(categories)] = len(l.Cells)

	if n := len(l.Cells); n > 0 {
		l.Rows = l.Cells[n-1].Row + 1
	}
	return l
}

// Range returns the half-open index range [start, end) of the
// category's cells. ok is false for an unknown category index.
func (l *Layout) Range(categoryIndex int) (start, end int, ok bool) {
	if categoryIndex < 0 || categoryIndex+1 >= len(l.starts) {
		return 0, 0, false
	}
	return l.starts[categoryIndex], l.starts[categoryIndex+1], true
}

// Center is the point every cell converges on.
func (l *Layout) Center() (x, y float64) {
	step := l.Geometry.Step()
	x = float64(l.Columns) / 2 * step
	if l.Columns > 0 {
		x -= l.Geometry.Padding
	}
	y = float64(l.Rows) / 2 * step
	return x, y
}

// Width and Height are the pixel extent of the natural grid.
func (l *Layout) Width() float64 {
	return float64(l.Columns) * l.Geometry.Step()
}

func (l *Layout) Height() float64 {
	return float64(l.Rows) * l.Geometry.Step()
}

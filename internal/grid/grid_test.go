package grid

import (
	"testing"

	"github.com/san-kum/rollgrid/internal/dataset"
)

func TestNewGeometry(t *testing.T) {
	g := NewGeometry(Viewport{Width: 1600, Height: 900})

	if g.CellSize != 8 || g.Padding != 8 {
		t.Errorf("cell size/padding = %v/%v, want 8/8", g.CellSize, g.Padding)
	}
	if g.Columns != 25 {
		t.Errorf("columns = %d, want 25", g.Columns)
	}
}

func TestNewGeometry_Degenerate(t *testing.T) {
	g := NewGeometry(Viewport{})
	if g.Columns != 1 {
		t.Errorf("zero viewport should still give one column, got %d", g.Columns)
	}
}

func TestGenerate_Invariants(t *testing.T) {
	tests := []struct {
		name string
		cats []dataset.CategoryCount
		cols int
	}{
		{"default", dataset.Default().Categories, 25},
		{"single column", []dataset.CategoryCount{{Name: "A", Count: 5}}, 1},
		{"zero count in middle", []dataset.CategoryCount{{Name: "A", Count: 3}, {Name: "B"}, {Name: "C", Count: 4}}, 2},
		{"exact fill", []dataset.CategoryCount{{Name: "A", Count: 6}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := Geometry{CellSize: 4, Padding: 4, Columns: tt.cols}
			l := Generate(tt.cats, geo)

			sum := 0
			for _, c := range tt.cats {
				sum += c.Count
			}
			if len(l.Cells) != sum {
				t.Fatalf("len(cells) = %d, want %d", len(l.Cells), sum)
			}
			for i, c := range l.Cells {
				if c.Index != i || c.Row != i/tt.cols || c.Col != i%tt.cols {
					t.Fatalf("cell %d at (%d,%d), want (%d,%d)", i, c.Row, c.Col, i/tt.cols, i%tt.cols)
				}
				if c.X != float64(c.Col)*8 || c.Y != float64(c.Row)*8 {
					t.Fatalf("cell %d pixel (%v,%v) does not match (%d,%d)", i, c.X, c.Y, c.Row, c.Col)
				}
			}

			start := 0
			for k, cat := range tt.cats {
				s, e, ok := l.Range(k)
				if !ok || s != start || e != start+cat.Count {
					t.Fatalf("Range(%d) = [%d,%d) ok=%v, want [%d,%d)", k, s, e, ok, start, start+cat.Count)
				}
				for i := s; i < e; i++ {
					if l.Cells[i].Category != cat.Name {
						t.Fatalf("cell %d belongs to %s, want %s", i, l.Cells[i].Category, cat.Name)
					}
				}
				start = e
			}
		})
	}
}

func TestGenerate_Rows(t *testing.T) {
	l := Generate(dataset.Default().Categories, Geometry{CellSize: 8, Padding: 8, Columns: 25})
	if l.Rows != 35 {
		t.Errorf("rows = %d, want 35", l.Rows)
	}
}

func TestGenerate_Empty(t *testing.T) {
	l := Generate(nil, Geometry{CellSize: 8, Padding: 8, Columns: 10})
	if len(l.Cells) != 0 || l.Rows != 0 {
		t.Errorf("empty input gave %d cells, %d rows", len(l.Cells), l.Rows)
	}
	x, y := l.Center()
	if y != 0 || x != 10*16/2-8 {
		t.Errorf("Center() = (%v,%v)", x, y)
	}
	if _, _, ok := l.Range(0); ok {
		t.Error("Range on empty layout should fail")
	}
}

func TestGenerate_SkipsNegative(t *testing.T) {
	l := Generate([]dataset.CategoryCount{{Name: "A", Count: -2}, {Name: "B", Count: 2}}, Geometry{Columns: 4})
	if len(l.Cells) != 2 || l.Cells[0].Category != "B" {
		t.Errorf("negative count produced cells: %+v", l.Cells)
	}
}

func TestCenter(t *testing.T) {
	l := Generate([]dataset.CategoryCount{{Name: "A", Count: 20}}, Geometry{CellSize: 2, Padding: 2, Columns: 10})
	x, y := l.Center()
	if x != 18 || y != 4 {
		t.Errorf("Center() = (%v,%v), want (18,4)", x, y)
	}
}

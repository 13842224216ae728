package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a grid of colored pixels drawn two per terminal cell with
// half blocks. The size in pixels is Width x (Height*2).
type Canvas struct {
	Width, Height int
	px            [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, px: make([][]string, h*2)}
	for i := range c.px {
		c.px[i] = make([]string, w)
	}
	return c
}

// Set colors the pixel at (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height*2 {
		return
	}
	c.px[y][x] = color
}

func (c *Canvas) At(x, y int) string {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height*2 {
		return ""
	}
	return c.px[y][x]
}

func (c *Canvas) Clear() {
	for y := range c.px {
		for x := range c.px[y] {
			c.px[y][x] = ""
		}
	}
}

// Lines renders the canvas over bg, one string per terminal line.
func (c *Canvas) Lines(bg lipgloss.Color) []string {
	base := lipgloss.NewStyle().Background(bg)
	lines := make([]string, c.Height)
	for row := 0; row < c.Height; row++ {
		var b strings.Builder
		for x := 0; x < c.Width; x++ {
			top, bottom := c.px[row*2][x], c.px[row*2+1][x]
			switch {
			case top == "" && bottom == "":
				b.WriteString(base.Render(" "))
			case bottom == "":
				b.WriteString(base.Foreground(lipgloss.Color(top)).Render("▀"))
			case top == "":
				b.WriteString(base.Foreground(lipgloss.Color(bottom)).Render("▄"))
			default:
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bottom)).Render("▀"))
			}
		}
		lines[row] = b.String()
	}
	return lines
}

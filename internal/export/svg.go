package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/rollgrid/internal/dataset"
	"github.com/san-kum/rollgrid/internal/grid"
	"github.com/san-kum/rollgrid/internal/slides"
)

// Style holds the page colors of an exported frame.
type Style struct {
	Background string
	Text       string
}

// FrameToSVG draws one presentation frame the way the page lays it out:
// legend on top, the grid below it, captions at the bottom.
func FrameToSVG(f slides.Frame, l *grid.Layout, story *dataset.Story, style Style) string {
	if l == nil || story == nil {
		return ""
	}
	size := l.Geometry.CellSize
	margin := 10.0
	gridTop := 5 * size
	fontSize := size * 1.5
	if fontSize <= 0 {
		fontSize = 12
	}

	width := l.Geometry.GridWidth
	if w := l.Width(); w > width {
		width = w
	}
	captionTop := gridTop + l.Height() + 2*fontSize
	height := captionTop + float64(len(f.State.Captions)+1)*fontSize*1.5

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g id="canvas" transform="translate(%.0f, %.0f)">
`, width+2*margin, height+2*margin, width+2*margin, height+2*margin, style.Background, margin, margin))

	// Legend swatches with their names underneath.
	sb.WriteString(fmt.Sprintf(`<g class="legend" opacity="%.2f">
`, f.LegendOpacity))
	for i, name := range story.Names() {
		x := float64(i) * size * 6
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="0" width="%.1f" height="%.1f" fill="%s"/>
`, x, size, size, story.Color(name)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" fill="%s">%s</text>
`, x, 3*size+size, size, style.Text, html.EscapeString(name)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g class="squares" transform="translate(0, %.1f)">
`, gridTop))
	for i, c := range f.Cells {
		if c.Opacity <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect class="square" data-category="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="%.2f"/>
`, html.EscapeString(l.Cells[i].Category), c.X, c.Y, size, size, c.Fill, c.Opacity))
	}
	sb.WriteString("</g>\n")

	for i, caption := range f.State.Captions {
		sb.WriteString(fmt.Sprintf(`<text class="caption" x="0" y="%.1f" font-size="%.1f" fill="%s" opacity="%.2f">%s</text>
`, captionTop+float64(i)*fontSize*1.5, fontSize, style.Text, f.CaptionAlpha, html.EscapeString(caption)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSlide settles slide s on p and writes the resulting frame to w.
func WriteSlide(w io.Writer, p *slides.Presentation, s slides.Slide, style Style) error {
	if err := p.Show(s); err != nil {
		return err
	}
	p.Settle()
	_, err := io.WriteString(w, FrameToSVG(p.Frame(), p.Layout, p.Story, style))
	return err
}

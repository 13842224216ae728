package slides

import (
	"fmt"
	"time"

	"github.com/san-kum/rollgrid/internal/anim"
)

const hoverRelease = 250 * time.Millisecond

// Enter reacts to the pointer entering cell i at grid pixel (x, y). It
// does nothing unless the current slide is interactive.
func (p *Presentation) Enter(i int, x, y float64) {
	if !p.State.Interactive || i < 0 || i >= len(p.Layout.Cells) {
		return
	}
	p.State.Hovered = i
	for j := range p.Layout.Cells {
		p.Cells.Schedule(TrackHover, j, anim.Segment{
			Mask: anim.Opacity,
			To:   anim.Attrs{Opacity: p.hoverOpacity(i, j)},
			Hold: true,
		})
	}
	p.State.Tooltip = Tooltip{Visible: true, X: x, Y: y, Text: p.tooltipText(i)}
}

// Move follows the pointer. Crossing into another cell counts as
// entering it.
func (p *Presentation) Move(i int, x, y float64) {
	if !p.State.Interactive {
		return
	}
	if i != p.State.Hovered {
		if i < 0 {
			p.Leave()
			return
		}
		p.Enter(i, x, y)
		return
	}
	p.State.Tooltip.X, p.State.Tooltip.Y = x, y
	p.State.Tooltip.Text = p.tooltipText(i)
}

// Leave releases the dimming over 250ms and hides the tooltip.
func (p *Presentation) Leave() {
	if !p.State.Interactive || p.State.Hovered < 0 {
		return
	}
	p.State.Hovered = -1
	p.State.Tooltip = Tooltip{}
	for j := range p.Layout.Cells {
		p.Cells.Schedule(TrackHover, j, anim.Segment{
			Duration: hoverRelease,
			Mask:     anim.Opacity,
			To:       anim.Attrs{Opacity: 1},
		})
	}
}

func (p *Presentation) hoverOpacity(hovered, j int) float64 {
	h := p.Layout.Cells[hovered].Category
	c := p.Layout.Cells[j].Category
	switch p.State.Slide {
	case Highlighted:
		hl := p.Story.Highlight
		if (h == hl) == (c == hl) {
			return 1
		}
		return DimOpacity
	default:
		if c == h {
			return 1
		}
		return DimOpacity
	}
}

func (p *Presentation) tooltipText(i int) string {
	name := p.Layout.Cells[i].Category
	st := p.Story
	switch p.State.Slide {
	case Highlighted:
		pct := st.Percent(st.Highlight)
		if name == st.Highlight {
			return fmt.Sprintf("%s - %d %s (%d%%)", name, st.Count(name), st.Unit, pct)
		}
		d := p.captionData()
		return fmt.Sprintf("The rest of the %d countries - %d %s (%d%%)", d.Others, d.OthersCount, st.Unit, 100-pct)
	default:
		text := fmt.Sprintf("%s - %s", name, formatMetric(st.Metric(name)))
		if st.MetricUnit != "" {
			text += " " + st.MetricUnit
		}
		return text
	}
}

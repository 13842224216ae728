package slides

import (
	"time"

	"github.com/san-kum/rollgrid/internal/anim"
	"github.com/san-kum/rollgrid/internal/dataset"
	"github.com/san-kum/rollgrid/internal/grid"
)

const (
	TrackDefault = "default"
	TrackFills   = "fills"
	TrackHover   = "hover"

	DimOpacity = 0.2
)

// Plan is what one slide does to one cell.
type Plan struct {
	// Move runs on the default track.
	Move anim.Segment
	// Reveal, when set, is chained after Move on the default track.
	Reveal *anim.Segment
	// Recolor, when set, runs on the fills track.
	Recolor *anim.Segment
}

// Segments returns the default track sequence.
func (p Plan) Segments() []anim.Segment {
	if p.Reveal == nil {
		return []anim.Segment{p.Move}
	}
	return []anim.Segment{p.Move, *p.Reveal}
}

// Target computes the plan of slide s for cell c. It has no side effects.
func Target(s Slide, c grid.Cell, l *grid.Layout, story *dataset.Story) Plan {
	ms := time.Millisecond
	color := story.Color(c.Category)

	switch s {
	case Stacked:
		return Plan{
			Move: anim.Segment{
				Delay:    80 * ms * time.Duration(c.Row),
				Duration: 250 * ms,
				Mask:     anim.Position | anim.Fill,
				To:       anim.Attrs{X: 0, Y: c.Y, Fill: color},
			},
			Reveal: &anim.Segment{
				Duration: 600 * ms,
				Mask:     anim.Opacity,
				To:       anim.Attrs{Opacity: 1},
			},
		}
	case Expanded:
		return Plan{Move: anim.Segment{
			Delay:    5 * ms * time.Duration(c.Row),
			Duration: 600 * ms,
			Mask:     anim.All,
			To:       anim.Attrs{X: c.X, Y: c.Y, Fill: color, Opacity: 1},
		}}
	case Highlighted:
		fill := story.Neutral
		if c.Category == story.Highlight {
			fill = color
		}
		return Plan{
			Move: anim.Segment{
				Delay:    5 * ms * time.Duration(c.Col),
				Duration: 600 * ms,
				Mask:     anim.Position | anim.Opacity,
				To:       anim.Attrs{X: c.X, Y: c.Y, Opacity: 1},
			},
			Recolor: &anim.Segment{
				Duration: 800 * ms,
				Mask:     anim.Fill | anim.Opacity,
				To:       anim.Attrs{Fill: fill, Opacity: 1},
			},
		}
	case Converged:
		x, y := l.Center()
		return Plan{Move: anim.Segment{
			Delay:    5 * ms * time.Duration(c.Row+c.Col),
			Duration: 600 * ms,
			Mask:     anim.All,
			To:       anim.Attrs{X: x, Y: y, Fill: story.Symbol, Opacity: 1},
		}}
	case Dispersed:
		return Plan{Move: anim.Segment{
			Delay:    5 * ms * time.Duration(c.Row+c.Col),
			Duration: 600 * ms,
			Mask:     anim.All,
			To:       anim.Attrs{X: c.X, Y: c.Y, Fill: story.Symbol, Opacity: 1},
		}}
	}
	return Plan{}
}

// legendFade is how long the legend takes to appear on entering s.
func legendFade(s Slide) time.Duration {
	if s == Highlighted {
		return 0
	}
	return 600 * time.Millisecond
}

const captionFade = time.Second

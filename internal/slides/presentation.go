package slides

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"text/template"
	"time"

	"github.com/san-kum/rollgrid/internal/anim"
	"github.com/san-kum/rollgrid/internal/dataset"
	"github.com/san-kum/rollgrid/internal/grid"
	"github.com/san-kum/rollgrid/internal/logging"
)

// Chrome element indices on the chrome timeline.
const (
	Legend = iota
	Caption
)

// Tooltip is the floating hover label, positioned in grid pixels.
type Tooltip struct {
	Visible bool
	X, Y    float64
	Text    string
}

// State is the view state shared by every cell. It is replaced, never
// accumulated, on each Show.
type State struct {
	Slide       Slide
	Interactive bool
	Hovered     int
	Tooltip     Tooltip
	Captions    []string
}

type Presentation struct {
	Layout *grid.Layout
	Story  *dataset.Story
	Cells  *anim.Timeline
	Chrome *anim.Timeline
	State  State

	enabled []Slide
	ctx     context.Context
}

type Option func(*Presentation)

// WithSlides restricts the presentation to the given slides, in order.
func WithSlides(slides ...Slide) Option {
	return func(p *Presentation) {
		p.enabled = append([]Slide(nil), slides...)
	}
}

// New lays every cell at its natural position, in its category color,
// fully transparent. Nothing is visible until the first Show.
func New(l *grid.Layout, story *dataset.Story, opts ...Option) *Presentation {
	initial := make([]anim.Attrs, len(l.Cells))
	for i, c := range l.Cells {
		initial[i] = anim.Attrs{X: c.X, Y: c.Y, Fill: story.Color(c.Category)}
	}
	p := &Presentation{
		Layout:  l,
		Story:   story,
		Cells:   anim.NewTimeline(initial, TrackDefault, TrackFills, TrackHover),
		Chrome:  anim.NewTimeline(make([]anim.Attrs, 2), TrackDefault),
		State:   State{Hovered: -1},
		enabled: append([]Slide(nil), All...),
		ctx:     logging.PackageCtx("slides"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Slides returns the enabled slides in trigger order.
func (p *Presentation) Slides() []Slide {
	return append([]Slide(nil), p.enabled...)
}

func (p *Presentation) Enabled(s Slide) bool {
	for _, e := range p.enabled {
		if e == s {
			return true
		}
	}
	return false
}

// Show enters slide s. All transitions are queued on the timelines and
// play out as the clock advances.
func (p *Presentation) Show(s Slide) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSlide, int(s))
	}
	if !p.Enabled(s) {
		return fmt.Errorf("%w: %s", ErrSlideDisabled, s)
	}
	ctx := logging.AppendCtx(p.ctx, slog.String("slide", s.String()))

	p.State.Slide = s
	p.State.Interactive = s.Interactive()
	p.State.Hovered = -1
	p.State.Tooltip = Tooltip{}
	p.Cells.Cancel(TrackHover)

	p.State.Captions = p.captions(ctx, s)
	p.Chrome.Set(Caption, anim.Attrs{})
	p.Chrome.Schedule(TrackDefault, Caption, anim.Segment{Duration: captionFade, Mask: anim.Opacity, To: anim.Attrs{Opacity: 1}})
	p.Chrome.Schedule(TrackDefault, Legend, anim.Segment{Duration: legendFade(s), Mask: anim.Opacity, To: anim.Attrs{Opacity: 1}})

	for i, c := range p.Layout.Cells {
		plan := Target(s, c, p.Layout, p.Story)
		p.Cells.Schedule(TrackDefault, i, plan.Segments()...)
		if plan.Recolor != nil {
			p.Cells.Schedule(TrackFills, i, *plan.Recolor)
		}
	}

	slog.DebugContext(ctx, "slide scheduled", slog.Int("cells", len(p.Layout.Cells)), slog.Bool("interactive", p.State.Interactive))
	return nil
}

// Next returns the enabled slide after the current one, wrapping.
func (p *Presentation) Next() Slide { return p.offset(1) }

// Prev returns the enabled slide before the current one, wrapping.
func (p *Presentation) Prev() Slide { return p.offset(-1) }

func (p *Presentation) offset(d int) Slide {
	n := len(p.enabled)
	if n == 0 {
		return 0
	}
	for i, s := range p.enabled {
		if s == p.State.Slide {
			return p.enabled[((i+d)%n+n)%n]
		}
	}
	if d < 0 {
		return p.enabled[n-1]
	}
	return p.enabled[0]
}

// Advance moves both timelines forward by dt.
func (p *Presentation) Advance(dt time.Duration) {
	p.Cells.Advance(dt)
	p.Chrome.Advance(dt)
}

// Settle plays every queued transition to its end.
func (p *Presentation) Settle() {
	p.Cells.Settle()
	p.Chrome.Settle()
}

func (p *Presentation) Idle() bool { return p.Cells.Idle() && p.Chrome.Idle() }

// Frame is a snapshot of everything needed to draw one picture.
type Frame struct {
	Cells         []anim.Attrs
	LegendOpacity float64
	CaptionAlpha  float64
	State         State
}

func (p *Presentation) Frame() Frame {
	st := p.State
	st.Captions = append([]string(nil), p.State.Captions...)
	return Frame{
		Cells:         p.Cells.Frame(),
		LegendOpacity: p.Chrome.Get(Legend).Opacity,
		CaptionAlpha:  p.Chrome.Get(Caption).Opacity,
		State:         st,
	}
}

// CaptionData is the value caption templates are executed against.
type CaptionData struct {
	Title          string
	Highlight      string
	HighlightCount int
	Total          int
	Percent        int
	Others         int
	OthersCount    int
	Categories     int
	Unit           string
}

func (p *Presentation) captionData() CaptionData {
	st := p.Story
	hc := st.Count(st.Highlight)
	others := len(st.Categories)
	if st.Index(st.Highlight) >= 0 {
		others--
	}
	return CaptionData{
		Title:          st.Title,
		Highlight:      st.Highlight,
		HighlightCount: hc,
		Total:          st.Total(),
		Percent:        st.Percent(st.Highlight),
		Others:         others,
		OthersCount:    st.Total() - hc,
		Categories:     len(st.Categories),
		Unit:           st.Unit,
	}
}

func (p *Presentation) captions(ctx context.Context, s Slide) []string {
	sources := p.Story.Captions[s.ID()]
	out := make([]string, 0, len(sources))
	data := p.captionData()
	for _, src := range sources {
		tmpl, err := template.New(s.ID()).Option("missingkey=zero").Parse(src)
		if err != nil {
			slog.WarnContext(ctx, "caption template invalid, using raw text", slog.String("error", err.Error()))
			out = append(out, src)
			continue
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			slog.WarnContext(ctx, "caption template failed, using raw text", slog.String("error", err.Error()))
			out = append(out, src)
			continue
		}
		out = append(out, buf.String())
	}
	return out
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

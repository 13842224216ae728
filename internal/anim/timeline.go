package anim

import "time"

// Segment is one transition step. The start value of every masked
// attribute is captured when the segment begins, after its delay.
//
// A Hold segment that ends its run keeps writing To every frame until
// its track is rescheduled or cancelled, so an overlay wins over other
// tracks that are still moving the same attributes.
type Segment struct {
	Delay    time.Duration
	Duration time.Duration
	Mask     Mask
	To       Attrs
	Hold     bool
}

type run struct {
	segs    []Segment
	idx     int
	start   time.Duration
	from    Attrs
	started bool
	holding bool
}

// Timeline owns the current attributes of n elements and their queued
// transitions.
type Timeline struct {
	now    time.Duration
	attrs  []Attrs
	order  []string
	tracks map[string]map[int]*run
	Ease   func(float64) float64
}

// NewTimeline starts every element at initial. Tracks listed in order are
// applied first, in that order; other tracks follow in first-use order.
func NewTimeline(initial []Attrs, order ...string) *Timeline {
	tl := &Timeline{
		attrs:  make([]Attrs, len(initial)),
		tracks: make(map[string]map[int]*run),
		Ease:   CubicInOut,
	}
	copy(tl.attrs, initial)
	for _, name := range order {
		tl.track(name)
	}
	return tl
}

func (tl *Timeline) track(name string) map[int]*run {
	runs, ok := tl.tracks[name]
	if !ok {
		runs = make(map[int]*run)
		tl.tracks[name] = runs
		tl.order = append(tl.order, name)
	}
	return runs
}

func (tl *Timeline) Len() int { return len(tl.attrs) }

func (tl *Timeline) Now() time.Duration { return tl.now }

// Schedule replaces the track's transitions for element i with segs.
// Out of range elements and empty segment lists are ignored.
func (tl *Timeline) Schedule(track string, i int, segs ...Segment) {
	if i < 0 || i >= len(tl.attrs) || len(segs) == 0 {
		return
	}
	tl.track(track)[i] = &run{
		segs:  segs,
		start: tl.now + segs[0].Delay,
	}
}

// Cancel drops every queued transition on track.
func (tl *Timeline) Cancel(track string) {
	if runs, ok := tl.tracks[track]; ok {
		for i := range runs {
			delete(runs, i)
		}
	}
}

// Set overwrites element i without animating. Running transitions keep
// their captured start values.
func (tl *Timeline) Set(i int, a Attrs) {
	if i >= 0 && i < len(tl.attrs) {
		tl.attrs[i] = a
	}
}

func (tl *Timeline) Get(i int) Attrs { return tl.attrs[i] }

// Frame returns a copy of every element's current attributes.
func (tl *Timeline) Frame() []Attrs {
	out := make([]Attrs, len(tl.attrs))
	copy(out, tl.attrs)
	return out
}

// Busy reports whether track has anything queued for element i.
func (tl *Timeline) Busy(track string, i int) bool {
	_, ok := tl.tracks[track][i]
	return ok
}

// Idle reports whether no track has anything left to animate. Holding
// overlays do not count.
func (tl *Timeline) Idle() bool {
	for _, runs := range tl.tracks {
		for _, r := range runs {
			if !r.holding {
				return false
			}
		}
	}
	return true
}

// nextEvent is the earliest segment start or end after the current
// clock, ignoring holding overlays.
func (tl *Timeline) nextEvent() (time.Duration, bool) {
	var at time.Duration
	found := false
	for _, runs := range tl.tracks {
		for _, r := range runs {
			if r.holding {
				continue
			}
			t := r.start
			if t <= tl.now {
				t = r.start + r.segs[r.idx].Duration
			}
			if t > tl.now && (!found || t < at) {
				at, found = t, true
			}
		}
	}
	return at, found
}

// Advance moves the clock by dt and applies every track in order.
func (tl *Timeline) Advance(dt time.Duration) {
	if dt > 0 {
		tl.now += dt
	}
	for _, name := range tl.order {
		runs := tl.tracks[name]
		for i, r := range runs {
			if tl.step(i, r) {
				delete(runs, i)
			}
		}
	}
}

// Settle runs every queued transition to completion. The clock stops at
// each segment start and end on the way, so overlapping tracks finish in
// the same order they would under a ticking clock.
func (tl *Timeline) Settle() {
	for !tl.Idle() {
		at, ok := tl.nextEvent()
		if !ok {
			tl.Advance(0)
			continue
		}
		tl.Advance(at - tl.now)
	}
}

// step applies r to element i and reports whether r has finished.
func (tl *Timeline) step(i int, r *run) bool {
	for {
		seg := r.segs[r.idx]
		if tl.now < r.start {
			return false
		}
		if !r.started {
			r.from = tl.attrs[i]
			r.started = true
		}

		t := 1.0
		if seg.Duration > 0 {
			t = float64(tl.now-r.start) / float64(seg.Duration)
			if t > 1 {
				t = 1
			}
		}
		e := t
		if tl.Ease != nil && t < 1 {
			e = tl.Ease(t)
		}
		tl.attrs[i] = lerpAttrs(tl.attrs[i], r.from, seg.To, seg.Mask, e)
		if t < 1 {
			return false
		}
		if seg.Hold && r.idx == len(r.segs)-1 {
			r.holding = true
			return false
		}

		end := r.start + seg.Duration
		r.idx++
		if r.idx == len(r.segs) {
			return true
		}
		r.start = end + r.segs[r.idx].Delay
		r.started = false
	}
}

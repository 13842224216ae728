package slides

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownSlide indicates a slide id or number outside the fixed set.
	ErrUnknownSlide = errors.New("slides: unknown slide")

	// ErrSlideDisabled indicates a slide the current variant does not offer.
	ErrSlideDisabled = errors.New("slides: slide not enabled")
)

type Slide int

const (
	Stacked Slide = iota + 1
	Expanded
	Highlighted
	Converged
	Dispersed
)

// All lists every slide in trigger order.
var All = []Slide{Stacked, Expanded, Highlighted, Converged, Dispersed}

var slideNames = map[Slide]string{
	Stacked:     "stacked",
	Expanded:    "expanded",
	Highlighted: "highlighted",
	Converged:   "converged",
	Dispersed:   "dispersed",
}

func (s Slide) Valid() bool { return s >= Stacked && s <= Dispersed }

func (s Slide) String() string {
	if name, ok := slideNames[s]; ok {
		return name
	}
	return fmt.Sprintf("slide(%d)", int(s))
}

// ID is the stable trigger id, slide1 through slide5.
func (s Slide) ID() string { return fmt.Sprintf("slide%d", int(s)) }

// Interactive reports whether cells respond to the pointer on s.
func (s Slide) Interactive() bool { return s == Expanded || s == Highlighted }

// ParseSlide accepts a trigger id ("slide3"), a number ("3") or a name
// ("highlighted").
func ParseSlide(in string) (Slide, error) {
	v := strings.ToLower(strings.TrimSpace(in))
	for s, name := range slideNames {
		if v == name {
			return s, nil
		}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(v, "slide"))
	if err != nil || !Slide(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSlide, in)
	}
	return Slide(n), nil
}

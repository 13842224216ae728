package slides_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rollgrid/internal/anim"
	"github.com/san-kum/rollgrid/internal/dataset"
	"github.com/san-kum/rollgrid/internal/grid"
	"github.com/san-kum/rollgrid/internal/slides"
)

const ms = time.Millisecond

func newPresentation(story *dataset.Story, cols int, opts ...slides.Option) *slides.Presentation {
	l := grid.Generate(story.Categories, grid.Geometry{CellSize: 8, Padding: 8, Columns: cols})
	return slides.New(l, story, opts...)
}

func smallStory() *dataset.Story {
	s := &dataset.Story{
		Categories: []dataset.CategoryCount{{Name: "A", Count: 2}, {Name: "B", Count: 2}},
		Colors:     map[string]string{"A": "#ff0000", "B": "#0000ff"},
		Metrics:    map[string]float64{"A": 1.5},
		MetricUnit: "miles",
		Highlight:  "A",
	}
	Expect(s.Sanitize()).To(Succeed())
	return s
}

func firstCellOf(p *slides.Presentation, name string) int {
	for i, c := range p.Layout.Cells {
		if c.Category == name {
			return i
		}
	}
	Fail("no cell for " + name)
	return -1
}

var _ = Describe("Presentation", func() {
	var p *slides.Presentation

	BeforeEach(func() {
		p = newPresentation(dataset.Default(), 25)
	})

	It("starts with every cell invisible at its natural position", func() {
		f := p.Frame()
		Expect(f.Cells).To(HaveLen(852))
		for i, a := range f.Cells {
			c := p.Layout.Cells[i]
			Expect(a.Opacity).To(BeZero())
			Expect(a.X).To(Equal(c.X))
			Expect(a.Y).To(Equal(c.Y))
		}
	})

	DescribeTable("toggles pointer interaction on every entry",
		func(s slides.Slide, interactive bool) {
			Expect(p.Show(slides.Expanded)).To(Succeed())
			Expect(p.Show(s)).To(Succeed())
			Expect(p.State.Interactive).To(Equal(interactive))
		},
		Entry("stacked", slides.Stacked, false),
		Entry("expanded", slides.Expanded, true),
		Entry("highlighted", slides.Highlighted, true),
		Entry("converged", slides.Converged, false),
		Entry("dispersed", slides.Dispersed, false),
	)

	DescribeTable("is idempotent in final state",
		func(s slides.Slide) {
			Expect(p.Show(s)).To(Succeed())
			p.Settle()
			first := p.Frame()

			Expect(p.Show(s)).To(Succeed())
			p.Advance(37 * ms)
			p.Settle()
			second := p.Frame()

			Expect(second.Cells).To(Equal(first.Cells))
			Expect(second.State.Captions).To(Equal(first.State.Captions))
		},
		Entry("stacked", slides.Stacked),
		Entry("expanded", slides.Expanded),
		Entry("highlighted", slides.Highlighted),
		Entry("converged", slides.Converged),
		Entry("dispersed", slides.Dispersed),
	)

	It("replaces captions on every entry", func() {
		Expect(p.Show(slides.Stacked)).To(Succeed())
		Expect(p.State.Captions).To(HaveLen(2))
		Expect(p.State.Captions[0]).To(ContainSubstring("The US is taking a lead"))

		Expect(p.Show(slides.Converged)).To(Succeed())
		Expect(p.State.Captions).To(Equal([]string{"If 1 square represents 250k trees"}))
		Expect(p.Frame().CaptionAlpha).To(BeZero())

		p.Settle()
		Expect(p.Frame().CaptionAlpha).To(Equal(1.0))
		Expect(p.Frame().LegendOpacity).To(Equal(1.0))
	})

	It("reports the highlight share in the third caption", func() {
		Expect(p.Show(slides.Highlighted)).To(Succeed())
		Expect(p.State.Captions[0]).To(Equal("And the US represents 17% of the top 9 countries"))
	})

	It("fills in counts in the second caption", func() {
		Expect(p.Show(slides.Expanded)).To(Succeed())
		Expect(p.State.Captions[0]).To(ContainSubstring("the US uses 141 rolls per capita"))
	})

	Context("on the expanded slide", func() {
		BeforeEach(func() {
			Expect(p.Show(slides.Expanded)).To(Succeed())
			p.Settle()
		})

		It("dims every other category while hovering", func() {
			g := firstCellOf(p, "Germany")
			p.Enter(g, 10, 20)
			p.Settle()

			for i, a := range p.Frame().Cells {
				if p.Layout.Cells[i].Category == "Germany" {
					Expect(a.Opacity).To(Equal(1.0))
				} else {
					Expect(a.Opacity).To(Equal(slides.DimOpacity))
				}
			}
			tip := p.State.Tooltip
			Expect(tip.Visible).To(BeTrue())
			Expect(tip.Text).To(Equal("Germany - 623.4 miles"))
			Expect(tip.X).To(Equal(10.0))
			Expect(tip.Y).To(Equal(20.0))
		})

		It("restores full opacity after leaving", func() {
			p.Enter(firstCellOf(p, "China"), 0, 0)
			p.Settle()
			p.Leave()
			p.Advance(100 * ms)
			Expect(p.Idle()).To(BeFalse())
			p.Settle()

			for _, a := range p.Frame().Cells {
				Expect(a.Opacity).To(Equal(1.0))
			}
			Expect(p.State.Tooltip.Visible).To(BeFalse())
			Expect(p.State.Hovered).To(Equal(-1))
		})

		It("treats moving onto another category as entering it", func() {
			p.Enter(firstCellOf(p, "US"), 0, 0)
			p.Move(firstCellOf(p, "Italy"), 5, 6)
			p.Settle()

			Expect(p.State.Tooltip.Text).To(Equal("Italy - 334.13 miles"))
			Expect(p.Frame().Cells[firstCellOf(p, "US")].Opacity).To(Equal(slides.DimOpacity))
		})

		It("clears the hover when the next slide starts", func() {
			p.Enter(firstCellOf(p, "UK"), 0, 0)
			p.Settle()
			Expect(p.Show(slides.Converged)).To(Succeed())

			Expect(p.State.Tooltip.Visible).To(BeFalse())
			Expect(p.State.Hovered).To(Equal(-1))
			p.Settle()
			for _, a := range p.Frame().Cells {
				Expect(a.Opacity).To(Equal(1.0))
			}
		})
	})

	Context("on the highlighted slide", func() {
		BeforeEach(func() {
			Expect(p.Show(slides.Highlighted)).To(Succeed())
			p.Settle()
		})

		It("keeps only the highlight in its true color", func() {
			story := p.Story
			for i, a := range p.Frame().Cells {
				if p.Layout.Cells[i].Category == "US" {
					Expect(a.Fill).To(Equal(story.Color("US")))
				} else {
					Expect(a.Fill).To(Equal(story.Neutral))
				}
			}
		})

		It("dims the other side of the highlight split", func() {
			p.Enter(firstCellOf(p, "US"), 0, 0)
			p.Settle()
			f := p.Frame()
			Expect(f.Cells[firstCellOf(p, "US")].Opacity).To(Equal(1.0))
			Expect(f.Cells[firstCellOf(p, "Spain")].Opacity).To(Equal(slides.DimOpacity))
			Expect(p.State.Tooltip.Text).To(Equal("US - 141 rolls (17%)"))

			p.Move(firstCellOf(p, "Spain"), 0, 0)
			p.Settle()
			f = p.Frame()
			Expect(f.Cells[firstCellOf(p, "US")].Opacity).To(Equal(slides.DimOpacity))
			Expect(f.Cells[firstCellOf(p, "Japan")].Opacity).To(Equal(1.0))
			Expect(p.State.Tooltip.Text).To(Equal("The rest of the 8 countries - 711 rolls (83%)"))
		})
	})

	DescribeTable("ignores the pointer on non-interactive slides",
		func(s slides.Slide) {
			Expect(p.Show(s)).To(Succeed())
			p.Settle()
			p.Enter(firstCellOf(p, "Japan"), 0, 0)
			p.Move(firstCellOf(p, "Spain"), 0, 0)
			p.Settle()

			Expect(p.State.Tooltip.Visible).To(BeFalse())
			Expect(p.State.Hovered).To(Equal(-1))
			for _, a := range p.Frame().Cells {
				Expect(a.Opacity).To(Equal(1.0))
			}
		},
		Entry("stacked", slides.Stacked),
		Entry("converged", slides.Converged),
		Entry("dispersed", slides.Dispersed),
	)

	It("rejects slides outside the variant", func() {
		classic := newPresentation(dataset.Default(), 25, slides.WithSlides(slides.Stacked, slides.Expanded, slides.Highlighted))
		Expect(classic.Show(slides.Converged)).To(MatchError(slides.ErrSlideDisabled))
		Expect(classic.Show(slides.Slide(9))).To(MatchError(slides.ErrUnknownSlide))
	})

	It("steps through enabled slides with wrap-around", func() {
		Expect(p.Next()).To(Equal(slides.Stacked))
		Expect(p.Show(slides.Dispersed)).To(Succeed())
		Expect(p.Next()).To(Equal(slides.Stacked))
		Expect(p.Prev()).To(Equal(slides.Converged))
	})
})

var _ = Describe("Highlight recolor track", func() {
	DescribeTable("completes after the position track is interrupted",
		func(next slides.Slide) {
			p := newPresentation(smallStory(), 4)
			Expect(p.Show(slides.Highlighted)).To(Succeed())
			p.Advance(10 * ms)

			Expect(p.Show(next)).To(Succeed())
			for i := range p.Layout.Cells {
				Expect(p.Cells.Busy(slides.TrackFills, i)).To(BeTrue())
			}
			p.Settle()

			b := firstCellOf(p, "B")
			Expect(p.Frame().Cells[b].Fill).To(Equal(p.Story.Neutral))
		},
		Entry("stacked", slides.Stacked),
		Entry("expanded", slides.Expanded),
	)

	It("settles to the same frame as ticked playback when tracks overlap", func() {
		start := func() *slides.Presentation {
			p := newPresentation(dataset.Default(), 25)
			Expect(p.Show(slides.Highlighted)).To(Succeed())
			p.Advance(10 * ms)
			Expect(p.Show(slides.Converged)).To(Succeed())
			return p
		}

		ticked := start()
		for !ticked.Idle() {
			ticked.Advance(ms)
		}
		settled := start()
		settled.Settle()

		symbol := 0
		for _, c := range settled.Frame().Cells {
			if c.Fill == settled.Story.Symbol {
				symbol++
			}
		}
		Expect(symbol).To(BeNumerically(">", 0))
		Expect(symbol).To(BeNumerically("<", len(settled.Layout.Cells)))
		Expect(settled.Frame().Cells).To(Equal(ticked.Frame().Cells))
	})
})

var _ = Describe("Target", func() {
	var (
		story *dataset.Story
		l     *grid.Layout
	)

	BeforeEach(func() {
		story = dataset.Default()
		l = grid.Generate(story.Categories, grid.Geometry{CellSize: 8, Padding: 8, Columns: 25})
	})

	It("stacks cells in column zero and reveals them after moving", func() {
		c := l.Cells[60]
		plan := slides.Target(slides.Stacked, c, l, story)
		Expect(plan.Move.Delay).To(Equal(80 * ms * time.Duration(c.Row)))
		Expect(plan.Move.To.X).To(BeZero())
		Expect(plan.Move.To.Y).To(Equal(c.Y))
		Expect(plan.Move.Mask.Has(anim.Opacity)).To(BeFalse())
		Expect(plan.Reveal).NotTo(BeNil())
		Expect(plan.Reveal.Duration).To(Equal(600 * ms))
		Expect(plan.Segments()).To(HaveLen(2))
	})

	It("moves and fades together on the other slides", func() {
		for _, s := range []slides.Slide{slides.Expanded, slides.Highlighted, slides.Converged, slides.Dispersed} {
			plan := slides.Target(s, l.Cells[0], l, story)
			Expect(plan.Reveal).To(BeNil())
			Expect(plan.Move.Mask.Has(anim.Opacity | anim.Position)).To(BeTrue())
		}
	})

	It("uses monotonic wave delays", func() {
		a, b := l.Cells[26], l.Cells[52]
		Expect(slides.Target(slides.Expanded, a, l, story).Move.Delay).To(Equal(5 * ms))
		Expect(slides.Target(slides.Highlighted, a, l, story).Move.Delay).To(Equal(5 * ms))
		Expect(slides.Target(slides.Converged, b, l, story).Move.Delay).To(Equal(5 * ms * time.Duration(b.Row+b.Col)))
		Expect(slides.Target(slides.Dispersed, b, l, story).Move.Delay).To(BeNumerically(">", slides.Target(slides.Dispersed, a, l, story).Move.Delay))
	})

	It("converges every cell on the grid center", func() {
		x, y := l.Center()
		for _, i := range []int{0, 400, 851} {
			plan := slides.Target(slides.Converged, l.Cells[i], l, story)
			Expect(plan.Move.To.X).To(Equal(x))
			Expect(plan.Move.To.Y).To(Equal(y))
			Expect(plan.Move.To.Fill).To(Equal(story.Symbol))
		}
	})

	It("recolors on a separate plan for the highlighted slide", func() {
		plan := slides.Target(slides.Highlighted, l.Cells[851], l, story)
		Expect(plan.Recolor).NotTo(BeNil())
		Expect(plan.Recolor.Duration).To(Equal(800 * ms))
		Expect(plan.Recolor.To.Fill).To(Equal(story.Neutral))
		Expect(plan.Move.Mask.Has(anim.Fill)).To(BeFalse())
	})
})

var _ = Describe("Empty layout", func() {
	It("treats every slide as a no-op", func() {
		p := newPresentation(&dataset.Story{}, 10)
		for _, s := range slides.All {
			Expect(p.Show(s)).To(Succeed())
			p.Settle()
			Expect(p.Frame().Cells).To(BeEmpty())
		}
		p.Enter(0, 0, 0)
		Expect(p.State.Tooltip.Visible).To(BeFalse())
	})
})

var _ = Describe("ParseSlide", func() {
	DescribeTable("accepts ids, numbers and names",
		func(in string, want slides.Slide) {
			got, err := slides.ParseSlide(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
			Expect(got.ID()).To(Equal(want.ID()))
		},
		Entry("id", "slide3", slides.Highlighted),
		Entry("number", "5", slides.Dispersed),
		Entry("name", "Stacked", slides.Stacked),
	)

	It("rejects anything else", func() {
		_, err := slides.ParseSlide("slide6")
		Expect(err).To(MatchError(slides.ErrUnknownSlide))
		_, err = slides.ParseSlide("nope")
		Expect(err).To(MatchError(slides.ErrUnknownSlide))
	})
})

// Package slides drives a grid of cells through a fixed set of animated
// presentation states.
//
// A [Presentation] owns the generated layout, the story it tells and two
// animation timelines: one for the cells and one for the legend and
// caption. Each slide is a pure [Target] function from a cell to its
// transition plan; [Presentation.Show] turns those plans into scheduled
// transitions and returns immediately.
//
// # Tracks
//
// Cells are animated on three independent tracks:
//
//	default - position and opacity, replaced by every slide
//	fills   - the highlight recolor, survives later slides
//	hover   - pointer dimming, held until the pointer leaves
//
// # Pointer Interaction
//
// Only Expanded and Highlighted react to the pointer. Every Show sets
// the interaction flag explicitly and clears any hover left over from
// the previous slide.
package slides

// Package viz presents a slide deck in the terminal using the Bubble Tea
// framework:
//
//   - [App]: full-screen program driving a [slides.Presentation]
//   - [Canvas]: half-block color canvas, two grid rows per line
//   - [Wire]: maps trigger ids to keys, skipping unknown triggers
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	1-5      - Show slide (configurable per trigger id)
//	N / →    - Next slide
//	P / ←    - Previous slide
//	T        - Cycle color themes
//	Esc      - Drop the hover
//	?        - Show help overlay
//	Q        - Quit
//
// # Pointer
//
// Moving the mouse over the grid hovers cells on the slides that allow
// it. Clicking a slide label in the footer shows that slide.
package viz

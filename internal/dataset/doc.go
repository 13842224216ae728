// Package dataset holds the records a presentation visualizes and the
// domain constants that accompany them.
//
// A [Story] bundles the ordered [CategoryCount] list with everything the
// slides need to label it: per-category colors, the per-category derived
// metric shown on hover, the highlighted category and caption templates.
// Swapping the story is the only supported way to change what the grid
// shows.
//
// # File Format
//
//	categories:
//	  - name: US
//	    count: 141
//	metrics:
//	  US: 633.78
//	highlight: US
package dataset

// Package anim schedules attribute transitions for a fixed set of
// elements on a manual clock.
//
// Each element carries one current [Attrs] value. Transitions are queued
// on named tracks:
//
//   - scheduling on a track replaces whatever that track still had queued
//     or running for the element, freezing the element where it was
//   - segments passed in one call run back to back
//   - tracks with different names never interrupt each other
//
// The clock only moves through [Timeline.Advance], so a frame loop, a
// test, or an exporter all drive the same state deterministically.
//
// # Thread Safety
//
// A Timeline is NOT safe for concurrent use. It is owned by the UI loop.
package anim

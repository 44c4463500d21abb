// Package viz renders the lensing grid in a terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the animated scene driven by tea ticks and mouse events
//   - [Canvas]: Braille-based pixel canvas with one blended color per cell
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Drag  - Rotate the grid (left button)
//	T     - Cycle color themes
//	?     - Show the lens falloff
//	Q/Esc - Quit
package viz

// Package viz runs the Mandelbrot animation in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework.
// Each tick the [driver.Driver] computes a frame into its Matrix, which is
// rendered onto a terminal surface (truecolor half-blocks or braille dots)
// next to a stats panel.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	N     - Step one frame while paused
//	R     - Restart from a cap of zero
//	↑/K   - Raise the iteration ceiling
//	↓/J   - Lower the iteration ceiling
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz

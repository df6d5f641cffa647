// Package viz renders trajectories: ASCII line charts for terminal output,
// PNG charts for files, and a Bubble Tea live view that steps the
// simulation interactively.
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	+/-   - Simulation speed
//	Q     - Quit
package viz

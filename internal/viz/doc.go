// Package viz plays evaluated rods back in the terminal.
//
//   - [Player]: Bubble Tea model stepping through precomputed time samples
//   - [Canvas]: Braille-based pixel canvas for the temperature profile
//   - [HeatStrip]: one coloured cell per column of the field
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	Q     - Quit
package viz

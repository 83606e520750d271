package core

// Color is the palette slot of a cell or shape. The TUI maps slots to
// ANSI codes and the desktop frontend to RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray          // walls, secondary HUD text
	ColorBlue          // midline band
	ColorRed           // obstacles
	ColorBrightCyan    // resting player
	ColorBrightYellow  // jumping player
	ColorBrightWhite   // HUD text
)

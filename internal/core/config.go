package core

// Display dimensions of the reference board (SSD1306 over I2C).
const (
	DisplayWidth  = 128
	DisplayHeight = 64
)

// RuntimeConfig carries the board geometry and RNG seed into the engine and
// the mode machine.
type RuntimeConfig struct {
	ScreenW int   // Display width in pixels
	ScreenH int   // Display height in pixels
	Seed    int64 // RNG seed for obstacle placement
}

// DefaultConfig returns a RuntimeConfig for the reference display.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: DisplayWidth,
		ScreenH: DisplayHeight,
		Seed:    0, // 0 means the caller picks a time-based seed
	}
}

// GameState is a read-only summary of a run.
type GameState struct {
	Score    int
	Bullets  int
	GameOver bool
}

package core

// Color is the status LED color. The LED is a single RGB pixel, so the
// palette is deliberately small.
type Color uint8

const (
	ColorOff Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorOff:
		return "off"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// RGB returns the 24-bit value written to the LED.
func (c Color) RGB() uint32 {
	switch c {
	case ColorRed:
		return 0xFF0000
	case ColorGreen:
		return 0x00FF00
	case ColorYellow:
		return 0xFFFF00
	case ColorBlue:
		return 0x0000FF
	case ColorMagenta:
		return 0xFF00FF
	case ColorCyan:
		return 0x00FFFF
	case ColorWhite:
		return 0xFFFFFF
	default:
		return 0x000000
	}
}

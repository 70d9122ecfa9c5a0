package tui

import (
	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/device"
)

// Button identifies one of the simulated push buttons.
type Button int

const (
	ButtonMain Button = iota
	ButtonLeft
	ButtonRight
	ButtonConfirm
	buttonCount
)

// Terminals deliver key presses, not key releases. A key press holds the
// simulated button down for holdSeconds. A press that arrives while the
// button is still held releases it for one sample and presses it again on
// the next Advance, so every key press reaches the device as an edge.
const (
	holdSeconds   = 0.12
	tiltSeconds   = 0.15
	tiltMagnitude = 6.0 // m/s², above every tilt threshold
)

// Board simulates the buttons, encoder, accelerometer, clock, LED and
// power switch of the device. Time only moves when Advance is called.
type Board struct {
	now       float64
	heldUntil [buttonCount]float64
	repress   [buttonCount]bool // Waiting for a released sample
	seen      [buttonCount]bool // Released level was sampled
	position  int
	tilt      float64
	tiltUntil float64
	led       core.Color
	poweredOn bool
}

// NewBoard creates a powered-on board with every button released.
func NewBoard() *Board {
	return &Board{poweredOn: true}
}

// Hardware returns the board as device collaborators drawing onto s.
func (b *Board) Hardware(s core.Surface) device.Hardware {
	return device.Hardware{
		Buttons: b,
		Encoder: b,
		Accel:   b,
		Clock:   b,
		Surface: s,
		Light:   b,
		Power:   b,
	}
}

// Advance sets the simulated clock.
func (b *Board) Advance(now float64) {
	if now > b.now {
		b.now = now
	}
	for btn := range b.repress {
		if b.repress[btn] && b.seen[btn] {
			b.heldUntil[btn] = b.now + holdSeconds
			b.repress[btn] = false
		}
	}
}

// Press holds a button down for a short while.
func (b *Board) Press(btn Button) {
	if btn < 0 || btn >= buttonCount || b.repress[btn] {
		return
	}
	if b.now < b.heldUntil[btn] {
		b.heldUntil[btn] = b.now
		b.repress[btn] = true
		b.seen[btn] = false
		return
	}
	b.heldUntil[btn] = b.now + holdSeconds
}

// Rotate turns the encoder by delta detents.
func (b *Board) Rotate(delta int) {
	b.position += delta
}

// Tilt applies a tilt impulse. A negative direction tilts the board
// forward and raises the player.
func (b *Board) Tilt(direction int) {
	switch {
	case direction < 0:
		b.tilt = -tiltMagnitude
	case direction > 0:
		b.tilt = tiltMagnitude
	default:
		b.tilt = 0
	}
	b.tiltUntil = b.now + tiltSeconds
}

func (b *Board) released(btn Button) bool {
	up := b.now >= b.heldUntil[btn]
	if up && b.repress[btn] {
		b.seen[btn] = true
	}
	return up
}

// Main implements device.Buttons.
func (b *Board) Main() bool { return b.released(ButtonMain) }

// Left implements device.Buttons.
func (b *Board) Left() bool { return b.released(ButtonLeft) }

// Right implements device.Buttons.
func (b *Board) Right() bool { return b.released(ButtonRight) }

// Confirm implements device.Buttons.
func (b *Board) Confirm() bool { return b.released(ButtonConfirm) }

// Position implements device.Encoder.
func (b *Board) Position() int { return b.position }

// Acceleration implements device.Accelerometer. Tilt is reported on every
// axis so any configured tilt axis works.
func (b *Board) Acceleration() (x, y, z float64) {
	if b.now >= b.tiltUntil {
		return 0, 0, 0
	}
	return b.tilt, b.tilt, b.tilt
}

// Now implements device.Clock.
func (b *Board) Now() float64 { return b.now }

// SetColor implements mode.StatusLight.
func (b *Board) SetColor(c core.Color) { b.led = c }

// LED returns the current LED color.
func (b *Board) LED() core.Color { return b.led }

// Shutdown implements mode.PowerSwitch.
func (b *Board) Shutdown() { b.poweredOn = false }

// PoweredOn reports whether Shutdown has not been called yet.
func (b *Board) PoweredOn() bool { return b.poweredOn }

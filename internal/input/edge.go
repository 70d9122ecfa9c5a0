// Package input turns polled, already-debounced hardware levels into
// per-tick edge events.
package input

// Sample is one poll of the digital inputs. Button levels are raw pin
// levels with pull-ups: true = released, false = pressed.
type Sample struct {
	Main    bool
	Left    bool
	Right   bool
	Confirm bool
	Encoder int // Encoder position counter
}

// Released returns a sample with every button released at the given
// encoder position.
func Released(encoder int) Sample {
	return Sample{Main: true, Left: true, Right: true, Confirm: true, Encoder: encoder}
}

// Events are the edges and levels derived from two consecutive samples.
type Events struct {
	MainPressed    bool
	LeftPressed    bool
	RightPressed   bool
	ConfirmPressed bool

	// Held levels, for controls that act every tick while down.
	LeftHeld  bool
	RightHeld bool

	EncoderDelta int
}

// AnyPressed reports whether any button saw a press edge this tick.
func (e Events) AnyPressed() bool {
	return e.MainPressed || e.LeftPressed || e.RightPressed || e.ConfirmPressed
}

// ButtonPressed reports a released-to-pressed transition of an active-low
// button.
func ButtonPressed(prev, cur bool) bool {
	return prev && !cur
}

// EncoderDelta returns the signed change of the encoder counter.
func EncoderDelta(prev, cur int) int {
	return cur - prev
}

// Tracker remembers the previous sample.
type Tracker struct {
	prev Sample
}

// NewTracker primes the tracker so the first Update only reports changes
// relative to initial. A button held at boot does not fire.
func NewTracker(initial Sample) *Tracker {
	return &Tracker{prev: initial}
}

// Update compares cur with the previous sample and stores cur.
func (t *Tracker) Update(cur Sample) Events {
	prev := t.prev
	t.prev = cur

	return Events{
		MainPressed:    ButtonPressed(prev.Main, cur.Main),
		LeftPressed:    ButtonPressed(prev.Left, cur.Left),
		RightPressed:   ButtonPressed(prev.Right, cur.Right),
		ConfirmPressed: ButtonPressed(prev.Confirm, cur.Confirm),
		LeftHeld:       !cur.Left,
		RightHeld:      !cur.Right,
		EncoderDelta:   EncoderDelta(prev.Encoder, cur.Encoder),
	}
}

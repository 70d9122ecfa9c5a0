package tui

import (
	"testing"

	"github.com/vovakirdan/tiltdodge/internal/core"
)

func TestBoardPressHoldsForAWhile(t *testing.T) {
	b := NewBoard()
	b.Advance(1.0)

	if !b.Main() {
		t.Fatal("button should start released")
	}

	b.Press(ButtonMain)
	if b.Main() {
		t.Error("button should read pressed right after Press")
	}

	b.Advance(1.05)
	if b.Main() {
		t.Error("button should stay pressed inside the hold window")
	}

	b.Advance(1.2)
	if !b.Main() {
		t.Error("button should release once the hold expires")
	}
	if !b.Left() || !b.Right() || !b.Confirm() {
		t.Error("other buttons should be unaffected")
	}
}

func TestBoardRepeatedPressReleasesFirst(t *testing.T) {
	b := NewBoard()
	b.Advance(1.0)
	b.Press(ButtonMain)

	// One sample per Advance, as the device loop does. The second key
	// press lands between the first and second samples.
	var levels []bool
	for i, now := range []float64{1.01, 1.02, 1.03, 1.04} {
		b.Advance(now)
		levels = append(levels, b.Main())
		if i == 0 {
			b.Press(ButtonMain)
		}
	}

	want := []bool{false, true, false, false}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("Main() levels = %v, expected %v", levels, want)
		}
	}

	b.Advance(1.03 + holdSeconds + 0.005)
	if !b.Main() {
		t.Error("second press should release after its own hold")
	}
}

func TestBoardTripleTapCoalesces(t *testing.T) {
	b := NewBoard()
	b.Press(ButtonLeft)
	b.Press(ButtonLeft)
	b.Press(ButtonLeft)

	if !b.Left() {
		t.Fatal("a press while held should read released until the next Advance")
	}
	b.Advance(0.01)
	if b.Left() {
		t.Error("queued press should hold the button again")
	}
}

func TestBoardTiltImpulse(t *testing.T) {
	b := NewBoard()
	b.Tilt(-1)

	x, y, z := b.Acceleration()
	if x != -tiltMagnitude || y != -tiltMagnitude || z != -tiltMagnitude {
		t.Errorf("Acceleration() = %v,%v,%v", x, y, z)
	}

	b.Advance(tiltSeconds)
	if _, y, _ := b.Acceleration(); y != 0 {
		t.Errorf("tilt should wear off, y = %v", y)
	}
}

func TestBoardClockOnlyMovesForward(t *testing.T) {
	b := NewBoard()
	b.Advance(2)
	b.Advance(1)
	if b.Now() != 2 {
		t.Errorf("Now() = %v, expected 2", b.Now())
	}
}

func TestBoardLightAndPower(t *testing.T) {
	b := NewBoard()
	b.SetColor(core.ColorGreen)
	if b.LED() != core.ColorGreen {
		t.Errorf("LED() = %v", b.LED())
	}
	b.Shutdown()
	if b.PoweredOn() {
		t.Error("board should be off after Shutdown")
	}
}

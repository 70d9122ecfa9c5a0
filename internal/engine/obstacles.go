package engine

import (
	"math/rand"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
)

// Obstacle is a horizontal bar falling from the top of the display.
type Obstacle struct {
	X      float64 // Left edge
	Y      float64 // Accumulated fall distance; drawn at int(Y)
	Width  int     // Bar length in pixels
	Dodged bool    // Set once the bar leaves the bottom edge
}

// Rect returns the collision box: Width pixels wide, one pixel tall.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, float64(o.Width), 1)
}

// ObstacleField spawns, moves and removes obstacles. Obstacles are kept in
// spawn order.
type ObstacleField struct {
	items   []Obstacle
	rng     *rand.Rand
	screenW int
	screenH int
	cfg     config.LevelConfig
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(seed int64, screenW, screenH int, cfg config.LevelConfig) *ObstacleField {
	return &ObstacleField{
		items:   make([]Obstacle, 0, max(cfg.MaxObstacles, 1)),
		rng:     rand.New(rand.NewSource(seed)),
		screenW: screenW,
		screenH: screenH,
		cfg:     cfg,
	}
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.items)
}

// Items returns a copy of the live obstacles.
func (f *ObstacleField) Items() []Obstacle {
	out := make([]Obstacle, len(f.items))
	copy(out, f.items)
	return out
}

// TrySpawn adds one obstacle at the top of the display unless the field is
// full. Returns whether an obstacle was added.
func (f *ObstacleField) TrySpawn() bool {
	if len(f.items) >= f.cfg.MaxObstacles {
		return false
	}

	minL := f.cfg.ObstacleMinLength
	maxL := f.cfg.ObstacleMaxLength
	length := minL
	if maxL > minL {
		length = minL + f.rng.Intn(maxL-minL+1)
	}

	x := 0
	if span := f.screenW - length; span > 0 {
		x = f.rng.Intn(span + 1)
	}

	f.items = append(f.items, Obstacle{X: float64(x), Y: 0, Width: length})
	return true
}

// Advance walks the obstacles in spawn order. Each one moves down by speed
// and is tested against the player box. On the first overlap Advance stops
// and reports the hit; obstacles after it are not moved. Obstacles that fall
// past the bottom edge are removed and counted in dodged.
func (f *ObstacleField) Advance(speed float64, player core.Rect) (dodged int, hit bool) {
	kept := f.items[:0]
	for i := range f.items {
		o := f.items[i]
		o.Y += speed

		if o.Rect().Intersects(player) {
			// Leave the rest of the field untouched.
			kept = append(kept, o)
			kept = append(kept, f.items[i+1:]...)
			f.items = kept
			return dodged, true
		}

		if o.Y > float64(f.screenH) {
			if !o.Dodged {
				o.Dodged = true
				dodged++
			}
			continue
		}
		kept = append(kept, o)
	}
	f.items = kept
	return dodged, false
}

// PopFront removes the earliest spawned obstacle.
func (f *ObstacleField) PopFront() (Obstacle, bool) {
	if len(f.items) == 0 {
		return Obstacle{}, false
	}
	o := f.items[0]
	f.items = append(f.items[:0], f.items[1:]...)
	return o, true
}

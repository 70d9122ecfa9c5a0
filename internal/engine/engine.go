// Package engine implements the falling-bar dodge simulation: the player
// moves sideways with the buttons, changes height band by tilting the board
// and shoots bars out of the way with a small stock of bullets.
package engine

import (
	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
)

// Gameplay constants
const (
	PlayerSize     = 8   // Player box is PlayerSize x PlayerSize
	HorizontalStep = 3   // Pixels per unit of MoveHorizontal delta
	MaxLevel       = 2   // Highest vertical band
	TiltCooldown   = 0.3 // Seconds between vertical band changes
	MaxBullets     = 3
	DodgesPerShot  = 4 // Every 4th dodge grants a bullet
	bottomMargin   = 2
	bulletW        = 2
	bulletH        = 6
	bulletGap      = 2
)

// Player is the dodging box.
type Player struct {
	X, Y   float64
	Level  int // Vertical band, 0 = bottom
	Width  int
	Height int
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, float64(p.Width), float64(p.Height))
}

// Engine is one run of the game. Once it reports game over it never changes
// again; start a new run with New.
type Engine struct {
	cfg       config.LevelConfig
	rt        core.RuntimeConfig
	player    Player
	obstacles *ObstacleField
	bullets   int
	score     int
	dodges    int
	frame     int
	lastTilt  float64
	gameOver  bool
}

// New creates a run for the given level.
func New(cfg config.LevelConfig, rt core.RuntimeConfig) *Engine {
	if rt.ScreenW <= 0 {
		rt.ScreenW = core.DisplayWidth
	}
	if rt.ScreenH <= 0 {
		rt.ScreenH = core.DisplayHeight
	}

	e := &Engine{
		cfg:       cfg,
		rt:        rt,
		obstacles: NewObstacleField(rt.Seed, rt.ScreenW, rt.ScreenH, cfg),
	}
	e.player = Player{
		X:      float64(rt.ScreenW / 2),
		Width:  PlayerSize,
		Height: PlayerSize,
	}
	e.player.Y = e.levelY(0)
	e.clampPlayer()
	return e
}

// Config returns the level configuration the run was started with.
func (e *Engine) Config() config.LevelConfig {
	return e.cfg
}

func (e *Engine) bottomY() float64 {
	return float64(e.rt.ScreenH - PlayerSize - bottomMargin)
}

func (e *Engine) verticalStep() float64 {
	return float64(e.rt.ScreenH / 4)
}

func (e *Engine) levelY(level int) float64 {
	return e.bottomY() - float64(level)*e.verticalStep()
}

func (e *Engine) clampPlayer() {
	e.player.Level = core.Clamp(e.player.Level, 0, MaxLevel)
	e.player.X = core.ClampF(e.player.X, 0, float64(e.rt.ScreenW-e.player.Width))
	e.player.Y = core.ClampF(e.player.Y, 0, float64(e.rt.ScreenH-e.player.Height))
}

// MoveHorizontal shifts the player by delta steps.
func (e *Engine) MoveHorizontal(delta int) {
	if e.gameOver {
		return
	}
	e.player.X += float64(delta * HorizontalStep)
	e.clampPlayer()
}

// FireBullet destroys the earliest spawned obstacle. It does nothing if the
// run is over, no bullets are left or there is nothing to shoot. Returns
// whether a shot was fired.
func (e *Engine) FireBullet() bool {
	if e.gameOver || e.bullets == 0 || e.obstacles.Len() == 0 {
		return false
	}
	e.obstacles.PopFront()
	e.bullets--
	e.score++
	return true
}

// Tick advances the simulation by one frame. tilt is the raw tilt-axis
// reading and now is monotonic time in seconds.
func (e *Engine) Tick(tilt, now float64) {
	if e.gameOver {
		return
	}
	e.frame++

	e.handleTilt(tilt, now)

	if e.cfg.SpawnIntervalFrames > 0 && e.frame%e.cfg.SpawnIntervalFrames == 0 {
		e.obstacles.TrySpawn()
	}

	dodged, hit := e.obstacles.Advance(e.cfg.ScrollSpeed, e.player.Rect())
	e.addDodges(dodged)
	if hit {
		e.gameOver = true
	}
}

func (e *Engine) handleTilt(tilt, now float64) {
	if now-e.lastTilt <= TiltCooldown {
		return
	}
	switch {
	case tilt < -e.cfg.TiltThreshold && e.player.Level < MaxLevel:
		e.player.Level++
	case tilt > e.cfg.TiltThreshold && e.player.Level > 0:
		e.player.Level--
	default:
		return
	}
	e.lastTilt = now
	e.player.Y = e.levelY(e.player.Level)
	e.clampPlayer()
}

func (e *Engine) addDodges(n int) {
	for i := 0; i < n; i++ {
		e.dodges++
		e.score++
		if e.dodges%DodgesPerShot == 0 && e.bullets < MaxBullets {
			e.bullets++
		}
	}
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Bullets returns the number of bullets held.
func (e *Engine) Bullets() int {
	return e.bullets
}

// Dodges returns how many obstacles left the display without hitting the
// player or being shot.
func (e *Engine) Dodges() int {
	return e.dodges
}

// IsGameOver reports whether the player has been hit.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Player returns the player state.
func (e *Engine) Player() Player {
	return e.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (e *Engine) Obstacles() []Obstacle {
	return e.obstacles.Items()
}

// Frame returns the number of ticks simulated so far.
func (e *Engine) Frame() int {
	return e.frame
}

// State returns a summary of the run.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		Bullets:  e.bullets,
		GameOver: e.gameOver,
	}
}

// Render redraws the whole playfield onto dst.
func (e *Engine) Render(dst core.Surface) {
	dst.Clear()

	dst.AddBitmap(int(e.player.X), int(e.player.Y), core.FilledBitmap(e.player.Width, e.player.Height))

	for _, o := range e.obstacles.items {
		dst.AddBitmap(int(o.X), int(o.Y), core.FilledBitmap(o.Width, 1))
	}

	for i := 0; i < e.bullets; i++ {
		x := e.rt.ScreenW - (i+1)*(bulletW+bulletGap)
		dst.AddBitmap(x, 1, core.FilledBitmap(bulletW, bulletH))
	}
}

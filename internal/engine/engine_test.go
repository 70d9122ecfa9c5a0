package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
)

func testConfig() config.LevelConfig {
	return config.LevelConfig{
		Name:                "test",
		ScrollSpeed:         2,
		SpawnIntervalFrames: 10,
		MaxObstacles:        1,
		ObstacleMinLength:   20,
		ObstacleMaxLength:   20,
		TiltThreshold:       2,
	}
}

// quietConfig never spawns within a test's lifetime, so obstacles can be
// placed by hand.
func quietConfig() config.LevelConfig {
	cfg := testConfig()
	cfg.SpawnIntervalFrames = 100000
	cfg.MaxObstacles = 10
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 128, ScreenH: 64, Seed: 42}
}

func place(e *Engine, x, y float64, w int) {
	e.obstacles.items = append(e.obstacles.items, Obstacle{X: x, Y: y, Width: w})
}

func TestNewEnginePlayerPosition(t *testing.T) {
	e := New(testConfig(), testRuntime())
	p := e.Player()

	if p.X != 64 {
		t.Errorf("X = %v, expected 64", p.X)
	}
	if p.Y != 54 {
		t.Errorf("Y = %v, expected 54", p.Y)
	}
	if p.Level != 0 || p.Width != PlayerSize || p.Height != PlayerSize {
		t.Errorf("unexpected player %+v", p)
	}
	if e.IsGameOver() || e.Score() != 0 || e.Bullets() != 0 {
		t.Errorf("unexpected initial state %+v", e.State())
	}
}

func TestFirstSpawnScenario(t *testing.T) {
	e := New(testConfig(), testRuntime())

	for i := 0; i < 10; i++ {
		e.Tick(0, float64(i)*0.01)
	}

	obs := e.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected exactly 1 obstacle, got %d", len(obs))
	}
	if obs[0].Y != 2 {
		t.Errorf("obstacle Y = %v, expected 2", obs[0].Y)
	}
	if obs[0].Width != 20 {
		t.Errorf("obstacle width = %d, expected 20", obs[0].Width)
	}
	if obs[0].X < 0 || obs[0].X > 108 {
		t.Errorf("obstacle X = %v out of [0, 108]", obs[0].X)
	}
	if e.IsGameOver() {
		t.Error("engine should not be over after 10 ticks")
	}
	if e.Frame() != 10 {
		t.Errorf("Frame() = %d, expected 10", e.Frame())
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnIntervalFrames = 1
	cfg.MaxObstacles = 3
	cfg.ScrollSpeed = 0.01
	e := New(cfg, testRuntime())

	for i := 0; i < 20; i++ {
		e.Tick(0, 0)
		if n := len(e.Obstacles()); n > cfg.MaxObstacles {
			t.Fatalf("tick %d: %d obstacles exceeds cap %d", i, n, cfg.MaxObstacles)
		}
	}
	if n := len(e.Obstacles()); n != 3 {
		t.Errorf("expected field filled to 3, got %d", n)
	}
}

func TestDeterminism(t *testing.T) {
	a := New(testConfig(), testRuntime())
	b := New(testConfig(), testRuntime())

	for i := 0; i < 25; i++ {
		a.Tick(0, 0)
		b.Tick(0, 0)
	}

	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}

func TestMoveHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []int
		expected float64
	}{
		{"right one", []int{1}, 67},
		{"left two", []int{-2}, 58},
		{"clamp left", []int{-100}, 0},
		{"clamp right", []int{100}, 120},
		{"back and forth", []int{5, -5}, 64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(testConfig(), testRuntime())
			for _, d := range tc.deltas {
				e.MoveHorizontal(d)
			}
			if got := e.Player().X; got != tc.expected {
				t.Errorf("X = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTiltCooldown(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	tilt := -e.cfg.TiltThreshold - 1

	e.Tick(tilt, 1.0)
	e.Tick(tilt, 1.1)

	if lvl := e.Player().Level; lvl != 1 {
		t.Fatalf("Level = %d, expected 1 after two tilts inside the cooldown", lvl)
	}
	if y := e.Player().Y; y != 38 {
		t.Errorf("Y = %v, expected 38", y)
	}

	e.Tick(tilt, 1.4)
	if lvl := e.Player().Level; lvl != 2 {
		t.Errorf("Level = %d, expected 2 once cooldown has passed", lvl)
	}

	e.Tick(tilt, 2.0)
	if lvl := e.Player().Level; lvl != MaxLevel {
		t.Errorf("Level = %d, should stay at %d", lvl, MaxLevel)
	}

	e.Tick(e.cfg.TiltThreshold+1, 3.0)
	if lvl := e.Player().Level; lvl != 1 {
		t.Errorf("Level = %d, expected 1 after tilting back", lvl)
	}
}

func TestTiltBelowThresholdIgnored(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.Tick(-e.cfg.TiltThreshold, 5)
	e.Tick(e.cfg.TiltThreshold, 6)
	if lvl := e.Player().Level; lvl != 0 {
		t.Errorf("Level = %d, readings at the threshold should not move the player", lvl)
	}
}

func TestTiltBlockedAtStart(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.Tick(-10, 0.2)
	if lvl := e.Player().Level; lvl != 0 {
		t.Errorf("Level = %d, tilt inside the first cooldown window should be ignored", lvl)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	place(e, 60, 53, 10) // falls to y=55, inside the player box
	place(e, 0, 10, 10)

	e.Tick(0, 0)

	if !e.IsGameOver() {
		t.Fatal("expected game over after overlap")
	}
	obs := e.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected obstacles left as-is, got %d", len(obs))
	}
	if obs[1].Y != 10 {
		t.Errorf("obstacle after the hit should not move, Y = %v", obs[1].Y)
	}

	// Game over is terminal
	frame, score := e.Frame(), e.Score()
	e.Tick(0, 10)
	e.MoveHorizontal(3)
	if e.Frame() != frame || e.Score() != score {
		t.Error("Tick after game over should be a no-op")
	}
	if e.Player().X != 64 {
		t.Error("MoveHorizontal after game over should be a no-op")
	}
	if e.FireBullet() {
		t.Error("FireBullet after game over should be a no-op")
	}
}

func TestTouchingEdgeIsNotCollision(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	place(e, 54, 50, 10) // right edge at 64 touches player's left edge
	for i := 0; i < 10; i++ {
		e.Tick(0, 0)
	}
	if e.IsGameOver() {
		t.Error("touching edges should not collide")
	}
}

func TestFourDodgesGrantBullet(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	for i := 0; i < 4; i++ {
		place(e, 0, 60-float64(i)*4, 10)
	}

	for i := 0; i < 10 && len(e.Obstacles()) > 0; i++ {
		e.Tick(0, 0)
	}

	if e.Dodges() != 4 {
		t.Fatalf("Dodges() = %d, expected 4", e.Dodges())
	}
	if e.Bullets() != 1 {
		t.Errorf("Bullets() = %d, expected exactly 1", e.Bullets())
	}
	if e.Score() != 4 {
		t.Errorf("Score() = %d, expected 4", e.Score())
	}
}

func TestShotObstacleIsNotDodge(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.bullets = 1
	for i := 0; i < 4; i++ {
		place(e, 0, 60-float64(i)*4, 10)
	}

	if !e.FireBullet() {
		t.Fatal("FireBullet() should fire")
	}
	if e.Score() != 1 {
		t.Errorf("Score() = %d, expected 1 after a shot", e.Score())
	}

	for i := 0; i < 10 && len(e.Obstacles()) > 0; i++ {
		e.Tick(0, 0)
	}

	if e.Dodges() != 3 {
		t.Errorf("Dodges() = %d, expected 3", e.Dodges())
	}
	if e.Bullets() != 0 {
		t.Errorf("Bullets() = %d, the shot bar should not count toward a grant", e.Bullets())
	}

	place(e, 0, 63, 10)
	e.Tick(0, 0)
	if e.Bullets() != 1 {
		t.Errorf("Bullets() = %d, expected a grant on the 4th real dodge", e.Bullets())
	}
}

func TestFireBulletIsFIFO(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.bullets = 2
	place(e, 0, 5, 10)
	place(e, 30, 3, 10)

	e.FireBullet()
	obs := e.Obstacles()
	if len(obs) != 1 || obs[0].X != 30 {
		t.Errorf("expected the earliest obstacle removed, got %+v", obs)
	}
	if e.Bullets() != 1 {
		t.Errorf("Bullets() = %d, expected 1", e.Bullets())
	}
}

func TestFireBulletNoOp(t *testing.T) {
	t.Run("no bullets", func(t *testing.T) {
		e := New(quietConfig(), testRuntime())
		place(e, 0, 5, 10)
		before, obs := e.State(), e.Obstacles()

		if e.FireBullet() {
			t.Error("FireBullet() should not fire without bullets")
		}
		if e.State() != before || len(e.Obstacles()) != len(obs) {
			t.Error("state changed")
		}
	})

	t.Run("no obstacles", func(t *testing.T) {
		e := New(quietConfig(), testRuntime())
		e.bullets = 2
		before := e.State()

		if e.FireBullet() {
			t.Error("FireBullet() should not fire without obstacles")
		}
		if e.State() != before {
			t.Errorf("state changed: %+v -> %+v", before, e.State())
		}
	})
}

func TestBulletsCapped(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.addDodges(40)
	if e.Bullets() != MaxBullets {
		t.Errorf("Bullets() = %d, expected cap %d", e.Bullets(), MaxBullets)
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	cfg := config.Synthesize(config.Hard, 10)
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		rt := testRuntime()
		rt.Seed = int64(run)
		e := New(cfg, rt)
		lastScore := 0

		for tick := 0; tick < 3000 && !e.IsGameOver(); tick++ {
			switch rng.Intn(4) {
			case 0:
				e.MoveHorizontal(rng.Intn(5) - 2)
			case 1:
				e.FireBullet()
			}
			e.Tick(rng.Float64()*8-4, float64(tick)*0.01)

			if b := e.Bullets(); b < 0 || b > MaxBullets {
				t.Fatalf("run %d tick %d: bullets %d out of range", run, tick, b)
			}
			if e.Score() < lastScore {
				t.Fatalf("run %d tick %d: score went down %d -> %d", run, tick, lastScore, e.Score())
			}
			if n := len(e.Obstacles()); n > cfg.MaxObstacles {
				t.Fatalf("run %d tick %d: %d obstacles exceeds cap", run, tick, n)
			}
			p := e.Player()
			if p.X < 0 || p.X > float64(rt.ScreenW-p.Width) || p.Level < 0 || p.Level > MaxLevel {
				t.Fatalf("run %d tick %d: player out of bounds %+v", run, tick, p)
			}
			lastScore = e.Score()
		}
	}
}

func TestRender(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.bullets = 2
	place(e, 10, 20.7, 15)

	g := core.NewGroup()
	g.AddText(0, 0, "stale")
	e.Render(g)

	els := g.Elements()
	if len(els) != 4 {
		t.Fatalf("expected player + obstacle + 2 bullets, got %d elements", len(els))
	}
	for _, el := range els {
		if el.Kind != core.ElementBitmap {
			t.Errorf("unexpected element %+v", el)
		}
	}
	if els[0].X != 64 || els[0].Y != 54 || els[0].Bitmap.W != PlayerSize {
		t.Errorf("player element = %+v", els[0])
	}
	if els[1].Y != 20 || els[1].Bitmap.W != 15 || els[1].Bitmap.H != 1 {
		t.Errorf("obstacle element = %+v", els[1])
	}
	if els[2].X != 124 || els[3].X != 120 {
		t.Errorf("bullets at x=%d,%d expected 124,120", els[2].X, els[3].X)
	}
}

func TestRenderAfterShotDropsObstacle(t *testing.T) {
	e := New(quietConfig(), testRuntime())
	e.bullets = 1
	place(e, 10, 20, 15)

	g := core.NewGroup()
	e.Render(g)
	if g.Len() != 3 {
		t.Fatalf("expected player + obstacle + bullet, got %d elements", g.Len())
	}

	if !e.FireBullet() {
		t.Fatal("FireBullet() should fire")
	}
	e.Render(g)

	els := g.Elements()
	if len(els) != 1 || els[0].Bitmap.W != PlayerSize {
		t.Errorf("after the shot only the player should be drawn, got %+v", els)
	}
}

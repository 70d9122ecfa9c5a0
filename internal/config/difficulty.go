package config

import (
	"fmt"
	"math"
)

// difficultyBase is the level-1 tuning of a difficulty.
type difficultyBase struct {
	scrollSpeed   float64
	spawnInterval int
	maxObstacles  int
	minLength     int
	maxLength     int
	tiltThreshold float64
}

var bases = map[Difficulty]difficultyBase{
	Easy:   {scrollSpeed: 1.0, spawnInterval: 24, maxObstacles: 3, minLength: 20, maxLength: 40, tiltThreshold: 3.0},
	Medium: {scrollSpeed: 1.5, spawnInterval: 18, maxObstacles: 4, minLength: 25, maxLength: 50, tiltThreshold: 2.75},
	Hard:   {scrollSpeed: 2.0, spawnInterval: 12, maxObstacles: 5, minLength: 30, maxLength: 60, tiltThreshold: 2.5},
}

// Per-level increments.
const (
	speedPerLevel     = 0.15
	intervalPerLevel  = 1
	levelsPerObstacle = 3
	tiltPerLevel      = 0.1
)

// Synthesize builds the formula config for a difficulty and level.
// Higher levels scroll faster, spawn sooner, allow more bars on screen and
// need finer tilts; the floors keep the game playable at Hard 10.
func Synthesize(d Difficulty, level int) LevelConfig {
	level = ClampLevel(level)
	b, ok := bases[d]
	if !ok {
		b = bases[Easy]
		d = Easy
	}
	step := level - MinLevel

	cfg := LevelConfig{
		Name:                fmt.Sprintf("%s %02d", d, level),
		ScrollSpeed:         roundTo(b.scrollSpeed+speedPerLevel*float64(step), 2),
		SpawnIntervalFrames: b.spawnInterval - intervalPerLevel*step,
		MaxObstacles:        b.maxObstacles + step/levelsPerObstacle,
		ObstacleMinLength:   b.minLength,
		ObstacleMaxLength:   b.maxLength,
		TiltThreshold:       roundTo(b.tiltThreshold-tiltPerLevel*float64(step), 2),
	}
	return cfg.normalize()
}

// roundTo rounds to the given number of decimal places so printed
// configs don't show float noise.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

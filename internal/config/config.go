// Package config resolves per-level tuning and loads the device
// configuration. Level tuning prefers an on-disk override and falls back to
// a deterministic formula; device configuration is YAML with an embedded
// default.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Level bounds. Levels are 1-indexed on screen and in storage keys.
const (
	MinLevel   = 1
	MaxLevel   = 10
	LevelCount = MaxLevel - MinLevel + 1
)

// Floors applied to every resolved config.
const (
	MinSpawnInterval = 6
	MinTiltThreshold = 1.5
)

// ErrInvalidLevel is returned by LevelConfig.Validate.
var ErrInvalidLevel = errors.New("config: invalid level config")

// Difficulty is one of the three selectable difficulty presets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists the presets in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the display name ("Easy", "Medium", "Hard").
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts a difficulty name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// ClampLevel restricts a level number to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Key returns the storage key for a difficulty/level pair, e.g. "easy_03".
// Level overrides and high-score tables share this key format.
func Key(d Difficulty, level int) string {
	return fmt.Sprintf("%s_%02d", strings.ToLower(d.String()), level)
}

// LevelConfig is the immutable tuning for one run.
type LevelConfig struct {
	Name                string  `yaml:"name"`
	ScrollSpeed         float64 `yaml:"scroll_speed"`          // Pixels per tick
	SpawnIntervalFrames int     `yaml:"spawn_interval_frames"` // Ticks between spawn attempts
	MaxObstacles        int     `yaml:"max_obstacles"`
	ObstacleMinLength   int     `yaml:"obstacle_min_length"`
	ObstacleMaxLength   int     `yaml:"obstacle_max_length"`
	TiltThreshold       float64 `yaml:"tilt_threshold"` // Accelerometer units (m/s^2)
}

// Validate checks the field invariants.
func (c LevelConfig) Validate() error {
	switch {
	case c.ScrollSpeed <= 0:
		return fmt.Errorf("%w: scroll_speed must be positive, got %v", ErrInvalidLevel, c.ScrollSpeed)
	case c.SpawnIntervalFrames < 1:
		return fmt.Errorf("%w: spawn_interval_frames must be >= 1, got %d", ErrInvalidLevel, c.SpawnIntervalFrames)
	case c.MaxObstacles < 1:
		return fmt.Errorf("%w: max_obstacles must be >= 1, got %d", ErrInvalidLevel, c.MaxObstacles)
	case c.ObstacleMinLength < 1:
		return fmt.Errorf("%w: obstacle_min_length must be >= 1, got %d", ErrInvalidLevel, c.ObstacleMinLength)
	case c.ObstacleMinLength > c.ObstacleMaxLength:
		return fmt.Errorf("%w: obstacle_min_length %d exceeds obstacle_max_length %d",
			ErrInvalidLevel, c.ObstacleMinLength, c.ObstacleMaxLength)
	case c.TiltThreshold <= 0:
		return fmt.Errorf("%w: tilt_threshold must be positive, got %v", ErrInvalidLevel, c.TiltThreshold)
	}
	return nil
}

// normalize applies the floors shared by synthesized and override configs.
func (c LevelConfig) normalize() LevelConfig {
	if c.SpawnIntervalFrames < MinSpawnInterval {
		c.SpawnIntervalFrames = MinSpawnInterval
	}
	if c.TiltThreshold < MinTiltThreshold {
		c.TiltThreshold = MinTiltThreshold
	}
	return c
}

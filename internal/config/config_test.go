package config

import (
	"errors"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		d        Difficulty
		level    int
		expected string
	}{
		{Easy, 3, "easy_03"},
		{Medium, 10, "medium_10"},
		{Hard, 1, "hard_01"},
	}

	for _, tc := range tests {
		if got := Key(tc.d, tc.level); got != tc.expected {
			t.Errorf("Key(%v, %d) = %q, expected %q", tc.d, tc.level, got, tc.expected)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDifficulty(" HARD "); err != nil || got != Hard {
		t.Errorf("ParseDifficulty should ignore case and spaces, got %v, %v", got, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty should reject unknown names")
	}
}

func TestSynthesizeFloorsForAllLevels(t *testing.T) {
	for _, d := range Difficulties {
		for level := -2; level <= MaxLevel+3; level++ {
			cfg := Synthesize(d, level)
			if cfg.SpawnIntervalFrames < MinSpawnInterval {
				t.Errorf("%v level %d: spawn interval %d below floor", d, level, cfg.SpawnIntervalFrames)
			}
			if cfg.TiltThreshold < MinTiltThreshold {
				t.Errorf("%v level %d: tilt threshold %v below floor", d, level, cfg.TiltThreshold)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%v level %d: %v", d, level, err)
			}
		}
	}
}

// harder reports whether b is at least as hard as a on every axis.
func harder(a, b LevelConfig) bool {
	return b.ScrollSpeed >= a.ScrollSpeed &&
		b.SpawnIntervalFrames <= a.SpawnIntervalFrames &&
		b.MaxObstacles >= a.MaxObstacles &&
		b.ObstacleMinLength >= a.ObstacleMinLength &&
		b.ObstacleMaxLength >= a.ObstacleMaxLength &&
		b.TiltThreshold <= a.TiltThreshold
}

func TestSynthesizeMonotonic(t *testing.T) {
	for _, d := range Difficulties {
		for level := MinLevel; level < MaxLevel; level++ {
			a, b := Synthesize(d, level), Synthesize(d, level+1)
			if !harder(a, b) {
				t.Errorf("%v level %d -> %d got easier: %+v -> %+v", d, level, level+1, a, b)
			}
		}
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		if !harder(Synthesize(Easy, level), Synthesize(Medium, level)) {
			t.Errorf("Medium %d easier than Easy %d", level, level)
		}
		if !harder(Synthesize(Medium, level), Synthesize(Hard, level)) {
			t.Errorf("Hard %d easier than Medium %d", level, level)
		}
	}
}

func TestSynthesizeClampsLevel(t *testing.T) {
	if Synthesize(Easy, 0) != Synthesize(Easy, 1) {
		t.Error("level 0 should clamp to level 1")
	}
	if Synthesize(Hard, 42) != Synthesize(Hard, 10) {
		t.Error("level 42 should clamp to level 10")
	}
	if got := Synthesize(Medium, 4).Name; got != "Medium 04" {
		t.Errorf("Name = %q, expected %q", got, "Medium 04")
	}
}

func TestValidate(t *testing.T) {
	good := Synthesize(Easy, 1)
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate() on formula config: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*LevelConfig)
	}{
		{"zero speed", func(c *LevelConfig) { c.ScrollSpeed = 0 }},
		{"zero interval", func(c *LevelConfig) { c.SpawnIntervalFrames = 0 }},
		{"no obstacles", func(c *LevelConfig) { c.MaxObstacles = 0 }},
		{"min above max", func(c *LevelConfig) { c.ObstacleMinLength = c.ObstacleMaxLength + 1 }},
		{"negative tilt", func(c *LevelConfig) { c.TiltThreshold = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := good
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Validate() = %v, expected ErrInvalidLevel", err)
			}
		})
	}
}

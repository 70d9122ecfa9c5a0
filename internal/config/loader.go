package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrOverrideNotFound is returned by a Source that has no record for a key.
var ErrOverrideNotFound = errors.New("config: level override not found")

// LevelOverride is an on-disk level record. Every field is optional;
// missing fields come from the synthesized config.
type LevelOverride struct {
	Name                *string  `yaml:"name"`
	ScrollSpeed         *float64 `yaml:"scroll_speed"`
	SpawnIntervalFrames *int     `yaml:"spawn_interval_frames"`
	MaxObstacles        *int     `yaml:"max_obstacles"`
	ObstacleMinLength   *int     `yaml:"obstacle_min_length"`
	ObstacleMaxLength   *int     `yaml:"obstacle_max_length"`
	TiltThreshold       *float64 `yaml:"tilt_threshold"`
}

// Apply overlays the set fields onto base.
func (o LevelOverride) Apply(base LevelConfig) LevelConfig {
	if o.Name != nil {
		base.Name = *o.Name
	}
	if o.ScrollSpeed != nil {
		base.ScrollSpeed = *o.ScrollSpeed
	}
	if o.SpawnIntervalFrames != nil {
		base.SpawnIntervalFrames = *o.SpawnIntervalFrames
	}
	if o.MaxObstacles != nil {
		base.MaxObstacles = *o.MaxObstacles
	}
	if o.ObstacleMinLength != nil {
		base.ObstacleMinLength = *o.ObstacleMinLength
	}
	if o.ObstacleMaxLength != nil {
		base.ObstacleMaxLength = *o.ObstacleMaxLength
	}
	if o.TiltThreshold != nil {
		base.TiltThreshold = *o.TiltThreshold
	}
	return base
}

// ParseLevelOverride decodes a YAML or JSON level record.
func ParseLevelOverride(data []byte) (LevelOverride, error) {
	var o LevelOverride
	if err := yaml.Unmarshal(data, &o); err != nil {
		return LevelOverride{}, fmt.Errorf("config: cannot parse level override: %w", err)
	}
	return o, nil
}

// Source looks up level overrides by key ("easy_03").
type Source interface {
	Lookup(key string) (LevelOverride, error)
	// Describe names the source for logs and the CLI.
	Describe() string
}

// overrideExtensions are tried in order for each key.
var overrideExtensions = []string{".yaml", ".yml", ".json"}

// DirSource reads "<Root>/<key>.yaml" (or .yml/.json).
type DirSource struct {
	Root string
}

// NewDirSource creates a directory source.
func NewDirSource(root string) *DirSource {
	return &DirSource{Root: ExpandHome(root)}
}

// Lookup reads and parses the first matching file for key.
func (s *DirSource) Lookup(key string) (LevelOverride, error) {
	if s.Root == "" {
		return LevelOverride{}, ErrOverrideNotFound
	}
	for _, ext := range overrideExtensions {
		path := filepath.Join(s.Root, key+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return LevelOverride{}, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		o, err := ParseLevelOverride(data)
		if err != nil {
			return LevelOverride{}, fmt.Errorf("%s: %w", path, err)
		}
		return o, nil
	}
	return LevelOverride{}, ErrOverrideNotFound
}

// Describe returns the directory path.
func (s *DirSource) Describe() string {
	return s.Root
}

// DefaultLevelSources returns the override search order:
// customDir -> ~/.tiltdodge/levels -> ./levels.
func DefaultLevelSources(customDir string) []Source {
	var sources []Source
	customDir = ExpandHome(customDir)
	if customDir != "" {
		sources = append(sources, NewDirSource(customDir))
	}
	if dir := userConfigPath("levels"); dir != "" && dir != customDir {
		sources = append(sources, NewDirSource(dir))
	}
	sources = append(sources, NewDirSource("levels"))
	return sources
}

// LoadDevice loads the device configuration.
// Search order: customPath -> ~/.tiltdodge/device.yaml -> ./configs/device.yaml -> embedded default
func LoadDevice(customPath string) (DeviceConfig, error) {
	cfg := DefaultDeviceConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.withDefaults(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("device.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.withDefaults(), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/device.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.withDefaults(), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDeviceYAML, &cfg); err != nil {
		return DefaultDeviceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.withDefaults(), nil
}

// userConfigPath returns a path under ~/.tiltdodge, or empty if home is unavailable.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiltdodge", name)
}

// ExpandHome expands a leading "~" to the home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

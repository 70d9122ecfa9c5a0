package config

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// SourceFormula names the synthesized fallback in Resolution.Source.
const SourceFormula = "formula"

// Resolution is a resolved config plus where it came from.
type Resolution struct {
	Config LevelConfig
	Key    string
	Source string // Source.Describe() of the override, or SourceFormula
}

// Provider resolves difficulty/level pairs to LevelConfigs.
type Provider struct {
	sources []Source
	logger  *log.Logger
}

// NewProvider creates a provider that consults sources in order.
// A nil logger discards output.
func NewProvider(logger *log.Logger, sources ...Source) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Provider{sources: sources, logger: logger}
}

// Resolve returns the config for a difficulty and level (clamped to 1..10).
// It never fails: unreadable, malformed or invalid overrides fall back to
// the formula.
func (p *Provider) Resolve(d Difficulty, level int) LevelConfig {
	return p.Explain(d, level).Config
}

// Explain is Resolve plus the key and the source that supplied the config.
func (p *Provider) Explain(d Difficulty, level int) Resolution {
	level = ClampLevel(level)
	key := Key(d, level)
	base := Synthesize(d, level)

	for _, src := range p.sources {
		o, err := src.Lookup(key)
		if errors.Is(err, ErrOverrideNotFound) {
			continue
		}
		if err != nil {
			p.logger.Warn("ignoring level override", "key", key, "source", src.Describe(), "error", err)
			continue
		}

		cfg := o.Apply(base).normalize()
		if err := cfg.Validate(); err != nil {
			p.logger.Warn("ignoring level override", "key", key, "source", src.Describe(), "error", err)
			continue
		}
		p.logger.Debug("level resolved", "key", key, "source", src.Describe())
		return Resolution{Config: cfg, Key: key, Source: src.Describe()}
	}

	p.logger.Debug("level resolved", "key", key, "source", SourceFormula)
	return Resolution{Config: base, Key: key, Source: SourceFormula}
}

package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPromotion sets the kind pawns promote to.
func (b *ConfigBuilder) WithPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.PromotionKind = kind
	return b
}

// WithPromotionCallback sets the function notified of each promotion.
func (b *ConfigBuilder) WithPromotionCallback(fn func(*chess.Piece)) *ConfigBuilder {
	b.cfg.Rules.OnPromotion = fn
	return b
}

// WithStrictLegality enables king-safety checks and checkmate detection.
func (b *ConfigBuilder) WithStrictLegality(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictLegality = enabled
	return b
}

// WithPerft sets the perft root position and depth.
func (b *ConfigBuilder) WithPerft(fen string, depth int) *ConfigBuilder {
	b.cfg.Perft.FEN = fen
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

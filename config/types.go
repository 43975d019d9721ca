// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"log/slog"
	"strings"
)

var (
	// ErrInvalidConfig wraps every field-level validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoGraphSource indicates neither graph.family nor graph.edges is set.
	ErrNoGraphSource = errors.New("config: graph needs a family or edges")

	// ErrAmbiguousGraphSource indicates both graph.family and graph.edges are set.
	ErrAmbiguousGraphSource = errors.New("config: graph family and edges are mutually exclusive")
)

// Config is one workload file.
type Config struct {
	Name    string        `yaml:"name" validate:"omitempty,max=64"`
	Graph   GraphConfig   `yaml:"graph"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GraphConfig selects the input graph.
type GraphConfig struct {
	// Family is a builder family name; N is its size parameter.
	Family string `yaml:"family" validate:"omitempty,oneof=complete cycle path star wheel diamond theta bouquet bundle grid bipartite random tetrahedron cube octahedron dodecahedron icosahedron"`
	N      int    `yaml:"n" validate:"min=0,max=64"`

	// Seed feeds the "random" family.
	Seed int64 `yaml:"seed"`

	// VertexIDs and Labels pick builder naming schemes for family graphs.
	VertexIDs string `yaml:"vertex_ids" validate:"omitempty,oneof=decimal letters excel hex"`
	Labels    string `yaml:"labels" validate:"omitempty,oneof=decimal letters excel hex"`

	// Edges lists labelled edges explicitly; To == "" is a loop at From.
	Edges []EdgeConfig `yaml:"edges" validate:"omitempty,max=4096,dive"`

	// Groundset optionally relabels the edges in ascending edge-ID order.
	Groundset []string `yaml:"groundset" validate:"omitempty,dive,required"`
}

// EdgeConfig is one labelled edge.
type EdgeConfig struct {
	ID   string `yaml:"id" validate:"required,max=64"`
	From string `yaml:"from" validate:"required,max=64"`
	To   string `yaml:"to" validate:"omitempty,max=64"`
}

// LoggingConfig configures the CLI slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// MetricsConfig configures the Prometheus textfile dump; empty disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Graph: GraphConfig{Family: "complete", N: 4},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SlogLevel maps Level to a slog.Level; unknown or empty means Info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphmat/builder"
	"github.com/katalvlaran/graphmat/core"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Load reads, parses and validates the workload at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills unset fields from Default and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Graph.Family == "" && len(c.Graph.Edges) == 0 {
		c.Graph.Family, c.Graph.N = d.Graph.Family, d.Graph.N
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}

// Validate checks struct tags and that exactly one graph source is set.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	hasFamily, hasEdges := cfg.Graph.Family != "", len(cfg.Graph.Edges) > 0
	switch {
	case !hasFamily && !hasEdges:
		return ErrNoGraphSource
	case hasFamily && hasEdges:
		return ErrAmbiguousGraphSource
	}

	return nil
}

// BuildGraph materialises the configured graph as a multigraph.
func (g GraphConfig) BuildGraph() (*core.Graph, error) {
	if g.Family != "" {
		cons, err := builder.Family(g.Family, g.N)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		ids, err := builder.Scheme(g.VertexIDs)
		if err != nil {
			return nil, fmt.Errorf("config: vertex_ids: %w", err)
		}
		labels, err := builder.Scheme(g.Labels)
		if err != nil {
			return nil, fmt.Errorf("config: labels: %w", err)
		}
		bopts := []builder.BuilderOption{
			builder.WithIDScheme(ids),
			builder.WithLabelScheme(labels),
			builder.WithSeed(g.Seed),
		}
		out, err := builder.BuildMultigraph(bopts, cons)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return out, nil
	}

	out := core.NewMultigraph()
	for _, e := range g.Edges {
		to := e.To
		if to == "" {
			to = e.From
		}
		if err := out.AddEdgeWithID(e.ID, e.From, to); err != nil {
			return nil, fmt.Errorf("config: edge %s: %w", e.ID, err)
		}
	}

	return out, nil
}

// formatValidationError reports the first failed field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for _, e := range verrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
		case "min":
			return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, e.Param())
		case "max":
			return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, e.Param())
		case "oneof":
			return fmt.Errorf("%w: %s: must be one of [%s]", ErrInvalidConfig, field, e.Param())
		default:
			return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
		}
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

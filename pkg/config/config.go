// Package config loads, merges, and validates maestro configuration.
// Sources, in precedence order: maestro.yaml in the config directory,
// then built-in defaults. Environment variables are expanded inside
// the YAML before parsing.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the fully merged, validated runtime configuration.
type Config struct {
	Queue      *QueueConfig      `yaml:"queue"`
	Supervisor *SupervisorConfig `yaml:"supervisor"`
	Pipeline   *PipelineConfig   `yaml:"pipeline"`
	Backends   *BackendsConfig   `yaml:"backends"`
	EventLog   *EventLogConfig   `yaml:"event_log"`
	Personas   *PersonaConfig    `yaml:"personas"`
	Escalator  *EscalatorConfig  `yaml:"escalator"`
	Retention  *RetentionConfig  `yaml:"retention"`
}

// Initialize loads, merges, and validates ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load maestro.yaml from configDir (absence is not an error)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(configDir, "maestro.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No maestro.yaml found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		expanded := ExpandEnv(data)

		var user Config
		if err := yaml.Unmarshal(expanded, &user); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
		if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging configuration: %w", err)
		}
		slog.Info("Loaded configuration", "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Queue:      DefaultQueueConfig(),
		Supervisor: DefaultSupervisorConfig(),
		Pipeline:   DefaultPipelineConfig(),
		Backends:   DefaultBackendsConfig(),
		EventLog:   DefaultEventLogConfig(),
		Personas:   DefaultPersonaConfig(),
		Escalator:  DefaultEscalatorConfig(),
		Retention:  DefaultRetentionConfig(),
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	validators := []struct {
		name string
		fn   func() error
	}{
		{"queue", c.Queue.Validate},
		{"supervisor", c.Supervisor.Validate},
		{"pipeline", c.Pipeline.Validate},
		{"backends", c.Backends.Validate},
		{"event_log", c.EventLog.Validate},
		{"personas", c.Personas.Validate},
		{"escalator", c.Escalator.Validate},
		{"retention", c.Retention.Validate},
	}
	for _, v := range validators {
		if err := v.fn(); err != nil {
			return fmt.Errorf("%w: section %s: %v", ErrValidationFailed, v.name, err)
		}
	}
	return nil
}

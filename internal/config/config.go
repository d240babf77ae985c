// Package config loads kpaths CLI settings: defaults, then an optional YAML
// file, then KPATHS_* environment variables, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates CLI configuration.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Graph     GraphConfig     `yaml:"graph"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SearchConfig holds defaults for a K shortest paths run.
type SearchConfig struct {
	K           int `yaml:"k" validate:"gte=1"`
	Concurrency int `yaml:"concurrency" validate:"gte=1"`
	// TrackRelationships is "auto", "on" or "off".
	TrackRelationships string `yaml:"track_relationships" validate:"oneof=auto on off"`
	// ProgressPerSecond throttles per-spur progress logs; 0 disables them.
	ProgressPerSecond float64 `yaml:"progress_per_second" validate:"gte=0"`
}

// GraphConfig locates the input graph: a file, or a Neo4j database.
type GraphConfig struct {
	File  string      `yaml:"file"`
	Neo4j Neo4jConfig `yaml:"neo4j"`
}

// Neo4jConfig describes connectivity to a Bolt endpoint.
type Neo4jConfig struct {
	URI            string `yaml:"uri" validate:"omitempty,uri"`
	Database       string `yaml:"database"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	MaxConnections int    `yaml:"max_connections" validate:"gte=0"`
	Cypher         string `yaml:"cypher"`
	Directed       bool   `yaml:"directed"`
	Multigraph     bool   `yaml:"multigraph"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"`
	IncludeCaller bool   `yaml:"include_caller"`
}

// TelemetryConfig selects exporters.
type TelemetryConfig struct {
	MetricsAddr   string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	TraceExporter string `yaml:"trace_exporter" validate:"oneof=none stdout"`
}

const (
	defaultK             = 1
	defaultTracking      = "auto"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultTraceExporter = "none"
	defaultMaxConns      = 10

	envPrefix = "KPATHS_"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			K:                  defaultK,
			Concurrency:        runtime.GOMAXPROCS(0),
			TrackRelationships: defaultTracking,
		},
		Graph: GraphConfig{Neo4j: Neo4jConfig{MaxConnections: defaultMaxConns, Directed: true}},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Telemetry: TelemetryConfig{TraceExporter: defaultTraceExporter},
	}
}

// Load builds the configuration. path may be empty.
//
// Errors:
//   - file read or YAML decode failures, wrapped.
//   - malformed KPATHS_* numbers or booleans.
//   - ErrInvalidConfig joined with the validator report.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Graph.File, "GRAPH_FILE")
	setString(&cfg.Graph.Neo4j.URI, "NEO4J_URI")
	setString(&cfg.Graph.Neo4j.Database, "NEO4J_DATABASE")
	setString(&cfg.Graph.Neo4j.Username, "NEO4J_USERNAME")
	setString(&cfg.Graph.Neo4j.Password, "NEO4J_PASSWORD")
	setString(&cfg.Search.TrackRelationships, "TRACK_RELATIONSHIPS")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setString(&cfg.Telemetry.MetricsAddr, "METRICS_ADDR")
	setString(&cfg.Telemetry.TraceExporter, "TRACE_EXPORTER")

	for key, dst := range map[string]*int{
		"K":                     &cfg.Search.K,
		"CONCURRENCY":           &cfg.Search.Concurrency,
		"NEO4J_MAX_CONNECTIONS": &cfg.Graph.Neo4j.MaxConnections,
	} {
		if err := setInt(dst, key); err != nil {
			return err
		}
	}
	if err := setBool(&cfg.Logging.IncludeCaller, "LOG_INCLUDE_CALLER"); err != nil {
		return err
	}
	if v := os.Getenv(envPrefix + "PROGRESS_PER_SECOND"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %sPROGRESS_PER_SECOND %q: %w", envPrefix, v, err)
		}
		cfg.Search.ProgressPerSecond = f
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(envPrefix + key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s%s %q: %w", envPrefix, key, v, err)
	}
	*dst = n

	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s%s %q: %w", envPrefix, key, v, err)
	}
	*dst = b

	return nil
}

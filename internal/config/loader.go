package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the gateway.
// Zero values mean "unspecified"; Default supplies the baseline and Merge
// overlays the non-zero fields of a loaded file or flags.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	PublicDir    string `json:"public_dir" yaml:"public_dir" toml:"public_dir"`
	PublicPrefix string `json:"public_prefix" yaml:"public_prefix" toml:"public_prefix"`
	DatasetPath  string `json:"dataset_path" yaml:"dataset_path" toml:"dataset_path"`

	Neighbors           int     `json:"neighbors" yaml:"neighbors" toml:"neighbors"`
	MinkowskiP          float64 `json:"minkowski_p" yaml:"minkowski_p" toml:"minkowski_p"`
	PredictionCacheSize int     `json:"prediction_cache_size" yaml:"prediction_cache_size" toml:"prediction_cache_size"`

	LogLevel      string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat     string `json:"log_format" yaml:"log_format" toml:"log_format"`
	LogFile       string `json:"log_file" yaml:"log_file" toml:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb" yaml:"log_max_size_mb" toml:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups" yaml:"log_max_backups" toml:"log_max_backups"`
	LogMaxAgeDays int    `json:"log_max_age_days" yaml:"log_max_age_days" toml:"log_max_age_days"`

	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`

	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
}

// Default returns the baseline configuration: listen on :8080 and serve
// ./src/main/public under /public with the embedded dataset.
func Default() Config {
	return Config{
		Addr:                   ":8080",
		PublicDir:              filepath.Join("src", "main", "public"),
		PublicPrefix:           "/public",
		Neighbors:              5,
		MinkowskiP:             3,
		PredictionCacheSize:    1024,
		LogLevel:               "info",
		LogFormat:              "console",
		LogMaxSizeMB:           100,
		LogMaxBackups:          3,
		LogMaxAgeDays:          28,
		ShutdownTimeoutSeconds: 5,
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("json %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("toml %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	setStr(&c.Addr, o.Addr)
	setStr(&c.PublicDir, o.PublicDir)
	setStr(&c.PublicPrefix, o.PublicPrefix)
	setStr(&c.DatasetPath, o.DatasetPath)
	setInt(&c.Neighbors, o.Neighbors)
	if o.MinkowskiP != 0 {
		c.MinkowskiP = o.MinkowskiP
	}
	setInt(&c.PredictionCacheSize, o.PredictionCacheSize)
	setStr(&c.LogLevel, o.LogLevel)
	setStr(&c.LogFormat, o.LogFormat)
	setStr(&c.LogFile, o.LogFile)
	setInt(&c.LogMaxSizeMB, o.LogMaxSizeMB)
	setInt(&c.LogMaxBackups, o.LogMaxBackups)
	setInt(&c.LogMaxAgeDays, o.LogMaxAgeDays)
	setInt(&c.ShutdownTimeoutSeconds, o.ShutdownTimeoutSeconds)
	if o.CORSEnabled {
		c.CORSEnabled = true
	}
	if len(o.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = append([]string(nil), o.CORSAllowedOrigins...)
	}
	if len(o.CORSAllowedMethods) > 0 {
		c.CORSAllowedMethods = append([]string(nil), o.CORSAllowedMethods...)
	}
	if len(o.CORSAllowedHeaders) > 0 {
		c.CORSAllowedHeaders = append([]string(nil), o.CORSAllowedHeaders...)
	}
	return c
}

func setStr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// Validate rejects values the gateway cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !strings.HasPrefix(c.PublicPrefix, "/") {
		return fmt.Errorf("public_prefix must start with '/': %q", c.PublicPrefix)
	}
	if c.PublicPrefix == "/" || strings.HasSuffix(c.PublicPrefix, "/") {
		return fmt.Errorf("public_prefix must not end with '/': %q", c.PublicPrefix)
	}
	if c.Neighbors < 0 {
		return fmt.Errorf("neighbors must be positive: %d", c.Neighbors)
	}
	if c.MinkowskiP < 0 {
		return fmt.Errorf("minkowski_p must be positive: %g", c.MinkowskiP)
	}
	if c.PredictionCacheSize < 0 {
		return fmt.Errorf("prediction_cache_size must not be negative: %d", c.PredictionCacheSize)
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log_format: %q", c.LogFormat)
	}
	return nil
}

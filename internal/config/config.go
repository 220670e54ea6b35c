// Package config loads the optional run configuration file of the texloc CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/texloc/codec"
)

// DefaultMapName is the map used when none is named on the command line.
const DefaultMapName = "default"

// Config is the JSON run configuration. Fields omitted from the file fall
// back to the defaults returned by the Get* methods, so partial configs
// are safe.
type Config struct {
	// Maps names map locations: a local directory, s3://bucket/prefix or
	// minio://host/bucket/prefix.
	Maps map[string]string `json:"maps,omitempty"`

	Parallelism         *int    `json:"parallelism,omitempty"`
	VisibilityThreshold *int    `json:"visibility_threshold,omitempty"`
	Output              *string `json:"output,omitempty"`

	// Read-side limits
	CacheBytes         *int64 `json:"cache_bytes,omitempty"`
	MaxConcurrentReads *int64 `json:"max_concurrent_reads,omitempty"`
	IOLimitBytesPerSec *int64 `json:"io_limit_bytes_per_sec,omitempty"`

	LogLevel  *string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat *string `json:"log_format,omitempty"` // text or json
}

// Empty returns a Config with all fields unset.
func Empty() *Config {
	return &Config{}
}

// Load loads a Config from a JSON file.
// The file must have a .json extension and be at most 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := codec.Default.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Parallelism != nil && *c.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive, got %d", *c.Parallelism)
	}
	if c.VisibilityThreshold != nil && *c.VisibilityThreshold < 0 {
		return fmt.Errorf("visibility_threshold must not be negative, got %d", *c.VisibilityThreshold)
	}
	if c.Output != nil && *c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	for name, field := range map[string]*int64{
		"cache_bytes":            c.CacheBytes,
		"max_concurrent_reads":   c.MaxConcurrentReads,
		"io_limit_bytes_per_sec": c.IOLimitBytesPerSec,
	} {
		if field != nil && *field < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, *field)
		}
	}
	if c.LogLevel != nil {
		switch strings.ToLower(*c.LogLevel) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log_level %q", *c.LogLevel)
		}
	}
	if c.LogFormat != nil && *c.LogFormat != "text" && *c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q", *c.LogFormat)
	}
	for name, loc := range c.Maps {
		if _, err := ParseLocation(loc); err != nil {
			return fmt.Errorf("map %q: %w", name, err)
		}
	}
	return nil
}

// MapLocation returns the location of the named map.
func (c *Config) MapLocation(name string) (string, error) {
	loc, ok := c.Maps[name]
	if !ok {
		return "", fmt.Errorf("map %q not configured", name)
	}
	return loc, nil
}

// GetParallelism returns the worker count or 16.
func (c *Config) GetParallelism() int {
	if c.Parallelism == nil {
		return 16
	}
	return *c.Parallelism
}

// GetVisibilityThreshold returns the visibility threshold or 128.
func (c *Config) GetVisibilityThreshold() int {
	if c.VisibilityThreshold == nil {
		return 128
	}
	return *c.VisibilityThreshold
}

// GetOutput returns the output location or "./output.json".
func (c *Config) GetOutput() string {
	if c.Output == nil {
		return "./output.json"
	}
	return *c.Output
}

// GetCacheBytes returns the block cache size; 0 disables the cache.
func (c *Config) GetCacheBytes() int64 {
	if c.CacheBytes == nil {
		return 0
	}
	return *c.CacheBytes
}

// GetMaxConcurrentReads returns the read concurrency limit; 0 is unlimited.
func (c *Config) GetMaxConcurrentReads() int64 {
	if c.MaxConcurrentReads == nil {
		return 0
	}
	return *c.MaxConcurrentReads
}

// GetIOLimitBytesPerSec returns the read bandwidth limit; 0 is unlimited.
func (c *Config) GetIOLimitBytesPerSec() int64 {
	if c.IOLimitBytesPerSec == nil {
		return 0
	}
	return *c.IOLimitBytesPerSec
}

// GetLogLevel returns the log level or "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == nil {
		return "info"
	}
	return strings.ToLower(*c.LogLevel)
}

// GetLogFormat returns the log format or "text".
func (c *Config) GetLogFormat() string {
	if c.LogFormat == nil {
		return "text"
	}
	return *c.LogFormat
}

// Package config loads server and layout configuration for Pedigraph.
//
// Configuration is layered: built-in defaults, then an optional TOML
// file, then environment variables. Later layers win. The CLI only
// needs flags, so this package is used by the serve command and any
// deployment that wants a config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Environment variable overrides. Each one, when set, replaces the
// corresponding file or default value.
const (
	EnvAddr      = "PEDIGRAPH_ADDR"
	EnvRedisAddr = "PEDIGRAPH_REDIS_ADDR"
	EnvCacheDir  = "PEDIGRAPH_CACHE_DIR"
	EnvHSpacing  = "PEDIGRAPH_HSPACING"
	EnvVSpacing  = "PEDIGRAPH_VSPACING"
)

// DefaultAddr is the default server listen address.
const DefaultAddr = ":8080"

// appName names the XDG cache subdirectory.
const appName = "pedigraph"

// Config holds all tunable settings.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Layout LayoutConfig `toml:"layout"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// RedisAddr enables the Redis backend when set, e.g. "localhost:6379".
	RedisAddr string `toml:"redis_addr"`

	// Dir is the file cache directory. Defaults to the XDG cache dir.
	Dir string `toml:"dir"`
}

// LayoutConfig overrides layout spacing defaults.
type LayoutConfig struct {
	HSpacing float64 `toml:"h_spacing"`
	VSpacing float64 `toml:"v_spacing"`
}

// Load reads configuration from the given TOML file and applies
// environment overrides. An empty path skips the file layer; a missing
// file at an explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Cache.Dir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		cfg.Cache.Dir = dir
	}

	return cfg, nil
}

// DefaultCacheDir returns the XDG cache directory for pedigraph.
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv(EnvHSpacing); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvHSpacing, err)
		}
		cfg.Layout.HSpacing = f
	}
	if v := os.Getenv(EnvVSpacing); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvVSpacing, err)
		}
		cfg.Layout.VSpacing = f
	}
	return nil
}

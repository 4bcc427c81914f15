// Package config loads and persists the tool's TOML configuration.
//
// Settings are merged from four layers, highest precedence first:
//
//  1. REQS_* environment variables
//  2. a project-local .reqs.toml found by walking up from the working
//     directory
//  3. the user file at ~/.config/reqs/config.toml
//  4. the index-url from pip's own configuration (read-only)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ProjectFileName is the per-project config file discovered upward from
// the working directory.
const ProjectFileName = ".reqs.toml"

// Config holds every persisted setting. Zero values mean "unset"; Merge
// fills unset fields from lower-precedence layers.
type Config struct {
	// Color enables or disables styled output. Nil defers to terminal
	// detection and NO_COLOR.
	Color *bool `toml:"color,omitempty"`

	// Locale overrides the detected collation locale for sorting.
	Locale string `toml:"locale,omitempty"`

	PyPI  PyPI  `toml:"pypi,omitempty"`
	Cache Cache `toml:"cache,omitempty"`
}

// PyPI configures which Simple API indexes to query.
type PyPI struct {
	IndexURL    string `toml:"index-url,omitempty"`
	FallbackURL string `toml:"fallback-url,omitempty"`
}

// Cache configures the HTTP response cache.
type Cache struct {
	// Backend selects the cache implementation: "file" (default),
	// "redis", or "none".
	Backend   string `toml:"backend,omitempty"`
	RedisAddr string `toml:"redis-addr,omitempty"`

	// TTLHours is the cache entry lifetime. Zero means the built-in
	// default of 24 hours.
	TTLHours int `toml:"ttl-hours,omitempty"`
}

// UserPath returns the path of the user-level config file,
// ~/.config/reqs/config.toml.
func UserPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "reqs", "config.toml"), nil
}

// Load merges all configuration layers for the process working directory.
// Missing files are not errors; malformed TOML is.
func Load() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(cwd)
}

// LoadFrom merges all configuration layers, discovering the project file
// upward from dir.
func LoadFrom(dir string) (Config, error) {
	cfg := Config{PyPI: PyPI{IndexURL: pipIndexURL()}}

	userPath, err := UserPath()
	if err == nil {
		layer, err := readFile(userPath)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(layer, cfg)
	}

	if projPath := findProjectFile(dir); projPath != "" {
		layer, err := readFile(projPath)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(layer, cfg)
	}

	return merge(fromEnv(), cfg), nil
}

// LoadUser reads only the user-level config file, for commands that edit
// it. A missing file yields a zero Config.
func LoadUser() (Config, error) {
	path, err := UserPath()
	if err != nil {
		return Config{}, err
	}
	return readFile(path)
}

// Save writes cfg to the user config file, creating parent directories as
// needed.
func Save(cfg Config) error {
	path, err := UserPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Set assigns a dotted key ("color", "pypi.index-url", ...) in cfg from its
// string representation.
func Set(cfg *Config, key, value string) error {
	switch key {
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value for %q must be true or false", key)
		}
		cfg.Color = &b
	case "locale":
		cfg.Locale = value
	case "pypi.index-url":
		cfg.PyPI.IndexURL = value
	case "pypi.fallback-url":
		cfg.PyPI.FallbackURL = value
	case "cache.backend":
		switch value {
		case "file", "redis", "none":
			cfg.Cache.Backend = value
		default:
			return fmt.Errorf("value for %q must be file, redis, or none", key)
		}
	case "cache.redis-addr":
		cfg.Cache.RedisAddr = value
	case "cache.ttl-hours":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("value for %q must be a non-negative integer", key)
		}
		cfg.Cache.TTLHours = n
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// Unset clears a dotted key back to its zero value.
func Unset(cfg *Config, key string) error {
	return Set(cfg, key, zeroValue(key))
}

func zeroValue(key string) string {
	switch key {
	case "color":
		return "false"
	case "cache.ttl-hours":
		return "0"
	case "cache.backend":
		return "file"
	default:
		return ""
	}
}

// DefaultContent is the commented file written by `config init`.
const DefaultContent = `# reqs configuration. All keys are optional.

# Styled output. Omit to auto-detect (NO_COLOR is also honored).
# color = true

# Collation locale for sorting. Omit to detect from the environment.
# locale = "en_US.UTF-8"

[pypi]
# Simple API index queried by the versions command.
# index-url = "https://pypi.org/simple/"
# Tried when the primary index is unreachable (not on 404).
# fallback-url = ""

[cache]
# "file" (default), "redis", or "none".
# backend = "file"
# redis-addr = "localhost:6379"
# ttl-hours = 24
`

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// findProjectFile walks from dir to the filesystem root looking for a
// .reqs.toml.
func findProjectFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// merge overlays hi on lo: any field set in hi wins.
func merge(hi, lo Config) Config {
	out := lo
	if hi.Color != nil {
		out.Color = hi.Color
	}
	if hi.Locale != "" {
		out.Locale = hi.Locale
	}
	if hi.PyPI.IndexURL != "" {
		out.PyPI.IndexURL = hi.PyPI.IndexURL
	}
	if hi.PyPI.FallbackURL != "" {
		out.PyPI.FallbackURL = hi.PyPI.FallbackURL
	}
	if hi.Cache.Backend != "" {
		out.Cache.Backend = hi.Cache.Backend
	}
	if hi.Cache.RedisAddr != "" {
		out.Cache.RedisAddr = hi.Cache.RedisAddr
	}
	if hi.Cache.TTLHours != 0 {
		out.Cache.TTLHours = hi.Cache.TTLHours
	}
	return out
}

func fromEnv() Config {
	var cfg Config
	if v, ok := os.LookupEnv("REQS_COLOR"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = &b
		}
	}
	cfg.Locale = os.Getenv("REQS_LOCALE")
	cfg.PyPI.IndexURL = os.Getenv("REQS_PYPI_INDEX_URL")
	cfg.PyPI.FallbackURL = os.Getenv("REQS_PYPI_FALLBACK_URL")
	cfg.Cache.Backend = os.Getenv("REQS_CACHE_BACKEND")
	cfg.Cache.RedisAddr = os.Getenv("REQS_CACHE_REDIS_ADDR")
	if v := os.Getenv("REQS_CACHE_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Cache.TTLHours = n
		}
	}
	return cfg
}

// Keys lists every settable dotted key, for help text and completion.
func Keys() []string {
	return []string{
		"color",
		"locale",
		"pypi.index-url",
		"pypi.fallback-url",
		"cache.backend",
		"cache.redis-addr",
		"cache.ttl-hours",
	}
}

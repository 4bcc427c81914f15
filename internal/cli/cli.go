package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/buildinfo"
	"github.com/reqs-dev/reqs/pkg/cache"
	"github.com/reqs-dev/reqs/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "reqs"

	// defaultCacheTTL is how long PyPI responses stay cached when the config
	// does not say otherwise.
	defaultCacheTTL = 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Configuration layers are merged before any command runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "reqs",
		Short:        "Reqs manages requirements.txt files across a project tree",
		Long:         `Reqs is a CLI tool for editing Python requirements.txt files in bulk: adding, removing, pinning, and sorting dependency declarations across every file in a directory tree.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			if cfg.Color != nil && !*cfg.Color {
				SetColor(false)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.addCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.findCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.catCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the cache backend named by the config, degrading to the
// null cache when the backend is unavailable.
func (c *CLI) newCache(cmd *cobra.Command, noCache bool) cache.Cache {
	if noCache || c.cfg.Cache.Backend == "none" {
		return cache.NewNullCache()
	}

	if c.cfg.Cache.Backend == "redis" {
		addr := c.cfg.Cache.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		rc, err := cache.NewRedisCache(cmd.Context(), addr, appName+":")
		if err == nil {
			return rc
		}
		c.Logger.Warnf("redis cache at %s unavailable, using file cache: %v", addr, err)
	}

	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheTTL returns the configured cache entry lifetime.
func (c *CLI) cacheTTL() time.Duration {
	if c.cfg.Cache.TTLHours > 0 {
		return time.Duration(c.cfg.Cache.TTLHours) * time.Hour
	}
	return defaultCacheTTL
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/reqs/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

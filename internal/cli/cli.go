// Package cli implements the resonicon command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/resonicon/pkg/buildinfo"
	"github.com/matzehuels/resonicon/pkg/cache"
	"github.com/matzehuels/resonicon/pkg/config"
	"github.com/matzehuels/resonicon/pkg/icon"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "resonicon"

	// defaultRenderSize is the edge length used by the render and layout commands.
	defaultRenderSize = 1024
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// projectMarkers identify the root of the project whose resources/icons
// directory receives the iconset.
var projectMarkers = []string{".git", "CMakeLists.txt", "go.mod"}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it exports the iconset.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.exportCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "style file (.toml, .yaml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the render cache")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadStyle resolves the --config flag into a style.
func (c *CLI) loadStyle() (icon.Style, error) {
	style, err := config.Load(c.configPath)
	if err != nil {
		return icon.Style{}, err
	}
	if c.configPath != "" {
		c.Logger.Debug("loaded style", "file", c.configPath)
	}
	return style, nil
}

// newCache opens the render cache, falling back to a null cache when caching
// is disabled or no cache directory is usable.
func (c *CLI) newCache() cache.Cache {
	if c.noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("render cache disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("render cache disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/resonicon/).
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

// defaultOutputDir returns <project root>/resources/icons for the working
// directory.
func defaultOutputDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(projectRoot(wd), "resources", "icons"), nil
}

// projectRoot walks up from start to the nearest directory holding one of
// projectMarkers. Without a match it returns start.
func projectRoot(start string) string {
	dir := start
	for {
		for _, m := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

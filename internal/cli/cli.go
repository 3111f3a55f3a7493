// Package cli implements the publinks command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/publinks/pkg/buildinfo"
	"github.com/matzehuels/publinks/pkg/config"
	"github.com/matzehuels/publinks/pkg/links"
	"github.com/matzehuels/publinks/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "publinks"

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

	configPath string // --config
	noDart     bool   // --no-dart
	noPubspec  bool   // --no-pubspec
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
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Publinks finds pub.dev package references in Dart projects",
		Long:         `Publinks scans Dart sources and pubspec.yaml manifests for package references and turns them into pub.dev links.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetScanHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/publinks/config.toml)")
	root.PersistentFlags().BoolVar(&c.noDart, "no-dart", false, "do not scan .dart files")
	root.PersistentFlags().BoolVar(&c.noPubspec, "no-pubspec", false, "do not scan pubspec.yaml files")

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.openCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file and applies the command-line toggles.
func (c *CLI) loadConfig() (config.Config, links.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, links.Config{}, err
	}
	ext := cfg.Extraction()
	if c.noDart {
		ext.EnableDartFiles = false
	}
	if c.noPubspec {
		ext.EnablePubspecFile = false
	}
	c.Logger.Debug("extraction config", "dart", ext.EnableDartFiles, "pubspec", ext.EnablePubspecFile)
	return cfg, ext, nil
}

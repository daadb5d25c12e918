// Package cli implements the tinge command-line interface.
//
// This package provides commands for styling text with ANSI escape
// sequences, browsing the terminal color palette and text effects, and
// working with TOML theme files. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Style text from flags or a named theme style
//   - palette: Print the 16 basic and 256 indexed terminal colors
//   - effects: Demonstrate every supported text effect
//   - theme: Inspect and preview TOML theme files
//   - preview: Interactively compose a style
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tinge/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "tinge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
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
		Short:        "Tinge styles terminal text with ANSI escape sequences",
		Long:         `Tinge is a CLI tool for coloring and styling terminal text. It renders text with foreground, background, and underline colors, text effects like bold and italic, and reusable styles defined in TOML theme files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.effectsCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Package cli implements the poetry-lock-package command-line interface.
//
// The tool has a single action: read pyproject.toml and poetry.lock from a
// project directory and write a lock package next to them, optionally
// building, moving and cleaning it up afterwards.
//
// # Logging
//
// The --verbose (-v) flag switches to debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/poetry-lock-package/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/poetry-lock-package/pkg/buildinfo"
	"github.com/matzehuels/poetry-lock-package/pkg/builder"
	"github.com/matzehuels/poetry-lock-package/pkg/pipeline"
)

// appName is the application name used for commands and display.
const appName = "poetry-lock-package"

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
	Out    io.Writer // result output
	Err    io.Writer // build tool output and the spinner

	// Interactive enables the build spinner when Err is a terminal.
	Interactive bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		Out:         os.Stdout,
		Err:         w,
		Interactive: true,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Running it generates the lock
// package; the only subcommand is shell completion.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The build tool's own
// output is only shown at debug level.
func (c *CLI) newRunner(cfg config) *pipeline.Runner {
	b := &builder.Builder{Command: cfg.Poetry}
	if c.Logger.GetLevel() <= log.DebugLevel {
		b.Stdout = c.Err
		b.Stderr = c.Err
	}
	return pipeline.NewRunner(b, c.Logger)
}

package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/poetry-lock-package/pkg/pipeline"
)

// generateOpts holds the flags of the root command.
type generateOpts struct {
	projectDir string
	build      bool
	move       bool
	clean      bool
	noRoot     bool
	ignore     []string
	tests      bool
	graph      string
	print      bool
	verbose    bool
}

// generateCommand creates the root command that writes the lock package.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate a lock package from a Poetry project",
		Long: `Generate a lock package from a Poetry project.

The lock package is a copy of the project manifest whose dependencies are
pinned to the exact versions in poetry.lock, including every transitive
dependency and its environment markers. Installing it reproduces the
locked environment without the project code.

The package is written to <project-dir>/<name>-lock.`,
		Example: `  # Write the lock package
  poetry-lock-package

  # Build a wheel, move it to ./dist and remove the generated project
  poetry-lock-package --build --move --clean

  # Leave out test tooling and show the pinned table
  poetry-lock-package --ignore 'pytest.*' --print`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.projectDir, "project-dir", "C", pipeline.DefaultProjectDir, "directory with pyproject.toml and poetry.lock")
	cmd.Flags().BoolVar(&opts.build, "build", false, "build a wheel of the lock package")
	cmd.Flags().BoolVar(&opts.move, "move", false, "move built artifacts to <project-dir>/dist")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "remove the lock package directory afterwards")
	cmd.Flags().BoolVar(&opts.noRoot, "no-root", false, "do not pin the project itself")
	cmd.Flags().StringArrayVarP(&opts.ignore, "ignore", "i", nil, "regular expression of package names to leave out (repeatable)")
	cmd.Flags().BoolVar(&opts.tests, "tests", false, "add a tests package with a version check")
	cmd.Flags().StringVar(&opts.graph, "graph", "", "write the dependency graph (.dot for DOT, otherwise SVG)")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the pinned dependency table")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// runGenerate runs the pipeline and reports its result.
func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := c.newRunner(cfg)
	pipelineOpts := pipeline.Options{
		ProjectDir: opts.projectDir,
		AddRoot:    !opts.noRoot,
		Ignore:     opts.ignore,
		MaxDepth:   cfg.MaxDepth,
		Tests:      opts.tests,
		Build:      opts.build,
		Move:       opts.move,
		Clean:      opts.clean,
		Graph:      opts.graph,
		Logger:     logger,
	}

	prog := newProgress(logger)
	var result *pipeline.Result
	run := func() error {
		var err error
		result, err = runner.Run(ctx, pipelineOpts)
		return err
	}
	if c.useSpinner(opts) {
		err = withSpinner(ctx, c.Err, "Building lock package...", run)
	} else {
		err = run()
	}
	if err != nil {
		return err
	}
	prog.done("Generated lock package")

	printResult(c.Out, result, opts.graph)
	if opts.print {
		printNewline(c.Out)
		printPinned(c.Out, result.Lock.Dependencies)
	}
	return nil
}

// useSpinner reports whether the build should be shown with a spinner. The
// spinner would interleave with debug logs and build tool output.
func (c *CLI) useSpinner(opts generateOpts) bool {
	if !c.Interactive || !opts.build || opts.verbose {
		return false
	}
	f, ok := c.Err.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

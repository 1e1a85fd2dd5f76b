// Command oopbasics runs small demonstrations of composition, embedding-based
// reuse and encapsulation.
//
//	oopbasics list
//	oopbasics run composition inheritance
//	OOPBASICS_PERSON_AGE=-1 oopbasics run encapsulation
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/oopbasics/demo"
	"github.com/sghaida/oopbasics/internal/config"
	"github.com/sghaida/oopbasics/internal/logging"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// newLogger is swapped in tests to observe log records.
	newLogger func(config.LoggingConfig) (*zap.Logger, error)

	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, newLogger: logging.New}
	return a.execute(args)
}

func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(a.stderr, "Error:", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "oopbasics",
		Short:         "Composition, embedding and encapsulation demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a yaml config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug|info|warn|error)")

	root.AddCommand(
		a.runCmd(),
		a.listCmd(),
	)

	return root
}

// setup loads config and builds the logger before any subcommand runs.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validating --log-level: %w", err)
		}
	}

	a.cfg = cfg
	if _, ok := a.registry().Get(cfg.Demo.Default); !ok {
		return fmt.Errorf("validating demo.default: %w", demo.UnknownDemoError{Name: cfg.Demo.Default})
	}

	logger, err := a.newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.logger = logger
	return nil
}

// registry returns the built-in demos seeded from the loaded person settings.
func (a *app) registry() *demo.Registry {
	return demo.Default(a.cfg.Person.Name, a.cfg.Person.Age)
}

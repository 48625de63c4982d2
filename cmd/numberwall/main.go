// Command numberwall builds number walls and runs the related sequence
// transforms from the command line.
//
// Terms are fraction literals ("3", "-2/5", "1.25"), given as separate
// arguments or comma separated. Put negative leading terms after "--" or
// inside a comma list so they are not read as flags:
//
//	numberwall build 1,1,2,4,7,13,24,44
//	numberwall characteristic -- 1 1 2 4 7 13 24 44 81
//	numberwall batch --config walls.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the state shared by all subcommands.
type cli struct {
	verbose bool
	maxRows int

	logger *zap.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "numberwall",
		Short: "Number walls of integer and rational sequences",
		Long: `numberwall computes the number wall of a sequence: the table of
Toeplitz determinants whose zero windows expose linear recurrences.

Besides walls it derives characteristic polynomials of recurrences, Padé
approximants, finite difference tables and Akiyama-Tanigawa transforms.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().IntVar(&c.maxRows, "max-rows", 0, "Cap wall height (0 = no cap)")

	root.AddCommand(c.buildCmd())
	root.AddCommand(c.characteristicCmd())
	root.AddCommand(c.batchCmd())
	root.AddCommand(c.padeCmd())
	root.AddCommand(c.differenceCmd())
	root.AddCommand(c.akiyamaCmd())

	return root
}

// setup validates global flags and builds the logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if c.maxRows < 0 {
		return fmt.Errorf("--max-rows must be >= 0, got %d", c.maxRows)
	}

	config := zap.NewProductionConfig()
	if c.verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the CLI entry point for lockoor, a benchmark
// comparing sync.RWMutex against sync.Mutex under reader/writer
// contention.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/weiihann/lockoor/suite"
	"github.com/weiihann/lockoor/trial"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var (
		readers    int
		writers    int
		reads      int
		updates    []int
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "lockoor",
		Short: "Reader/writer lock contention benchmark",
		Long: `Lockoor runs a configurable mix of reader and writer goroutines
against a shared record, once under a readers-writer lock and once under a
plain exclusive lock, and reports elapsed wall-clock time per configuration
in a comparison table.

One configuration is built per --updates value; running with no flags
reproduces the reference suite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(logger, cmd.OutOrStdout(), runConfig{
				readers:    readers,
				writers:    writers,
				reads:      reads,
				updates:    updates,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&readers, "readers", 100,
		"Number of reader goroutines per trial")
	flags.IntVar(&writers, "writers", 5,
		"Number of writer goroutines per trial")
	flags.IntVar(&reads, "reads", 10000,
		"Read operations per reader")
	flags.IntSliceVar(&updates, "updates", []int{1, 10},
		"Update operations per writer, one configuration per value")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of table")

	return cmd
}

type runConfig struct {
	readers    int
	writers    int
	reads      int
	updates    []int
	outputJSON bool
}

func runBenchmark(logger *slog.Logger, out io.Writer, cfg runConfig) error {
	if len(cfg.updates) == 0 {
		return fmt.Errorf(
			"at least one configuration must be specified via --updates",
		)
	}

	s := suite.New(logger)

	for _, u := range cfg.updates {
		s.Add(trial.Config{
			Readers: cfg.readers,
			Writers: cfg.writers,
			Reads:   cfg.reads,
			Updates: u,
		})
	}

	if err := s.Run(); err != nil {
		return fmt.Errorf("run suite: %w", err)
	}

	if cfg.outputJSON {
		if err := s.WriteJSON(out); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
	} else {
		if err := s.WriteTable(out); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	logger.Info("benchmark complete")

	return nil
}

// Package suite runs an ordered sequence of trial configurations
// through both locking strategies and renders the comparison.
package suite

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/weiihann/lockoor/report"
	"github.com/weiihann/lockoor/trial"
)

// Suite holds trial configurations in addition order and, after Run,
// one result per configuration in the same order.
type Suite struct {
	logger  *slog.Logger
	configs []trial.Config
	results []trial.Result
}

// New creates an empty Suite that logs trial progress to logger.
func New(logger *slog.Logger) *Suite {
	return &Suite{logger: logger}
}

// Add appends a configuration. It returns the suite so configurations
// can be chained.
func (s *Suite) Add(cfg trial.Config) *Suite {
	s.configs = append(s.configs, cfg)

	return s
}

// Run executes every configuration in order, shared strategy first,
// then exclusive. Configurations run strictly one at a time so no
// trial's workers contend with another's.
func (s *Suite) Run() error {
	for i, cfg := range s.configs {
		tr, err := trial.New(cfg, s.logger)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}

		s.logger.Info("starting trial",
			slog.Int("index", i),
			slog.Int("readers", cfg.Readers),
			slog.Int("writers", cfg.Writers),
			slog.Int("reads", cfg.Reads),
			slog.Int("updates", cfg.Updates),
		)

		tr.RunSharedLock()
		tr.RunExclusiveLock()

		s.results = append(s.results, tr.TakeResult())
	}

	return nil
}

// Results returns the collected results in configuration order.
func (s *Suite) Results() []trial.Result {
	return s.results
}

// WriteTable renders the bordered comparison table to w.
func (s *Suite) WriteTable(w io.Writer) error {
	return report.Generate(w, s.results)
}

// WriteJSON writes the results as JSON to w.
func (s *Suite) WriteJSON(w io.Writer) error {
	return report.GenerateJSON(w, s.results)
}

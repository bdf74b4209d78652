package trial

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/weiihann/lockoor/payload"
)

// PayloadLength is the size of the random string a writer installs on
// every update.
const PayloadLength = 100000

// Canonical timing keys, one per locking strategy.
const (
	SharedMutexKey   = "Shared Mutex Time"
	StandardMutexKey = "Standard Mutex Time"
)

// Record is the shared state the worker goroutines contend on. All
// access discipline lives in the Trial; the record itself is plain
// storage.
type Record struct {
	Counter int
	Text    string
}

// Config fixes the shape of one trial: how many reader and writer
// goroutines to spawn, and how many operations each performs.
type Config struct {
	Readers int
	Writers int
	Reads   int
	Updates int
}

// Validate rejects negative counts. Zero counts are legal and produce
// a degenerate but well-defined trial.
func (c Config) Validate() error {
	if c.Readers < 0 || c.Writers < 0 || c.Reads < 0 || c.Updates < 0 {
		return fmt.Errorf(
			"trial counts must be non-negative, got "+
				"readers=%d writers=%d reads=%d updates=%d",
			c.Readers, c.Writers, c.Reads, c.Updates,
		)
	}

	return nil
}

// rwLock is the locking discipline a run executes under. sync.RWMutex
// satisfies it directly; exclusiveLock routes read acquisitions
// through the exclusive path.
type rwLock interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type exclusiveLock struct {
	sync.Mutex
}

func (l *exclusiveLock) RLock()   { l.Lock() }
func (l *exclusiveLock) RUnlock() { l.Unlock() }

// Trial runs one configuration under both locking strategies against a
// single shared record. Each strategy uses its own lock instance, so
// running one after the other never contends across runs. A Trial must
// not be copied once workers may hold a reference to it.
type Trial struct {
	cfg    Config
	record *Record
	shared sync.RWMutex
	excl   exclusiveLock
	times  map[string]int64
	logger *slog.Logger
}

// New creates a Trial for the given configuration. It fails if any
// count is negative.
func New(cfg Config, logger *slog.Logger) (*Trial, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Trial{
		cfg:    cfg,
		record: &Record{},
		times:  make(map[string]int64, 2),
		logger: logger.With(
			slog.Int("readers", cfg.Readers),
			slog.Int("writers", cfg.Writers),
			slog.Int("reads", cfg.Reads),
			slog.Int("updates", cfg.Updates),
		),
	}, nil
}

// RunSharedLock measures one run where readers take shared access and
// writers take exclusive access on a sync.RWMutex. It returns the
// elapsed wall-clock milliseconds and records them under
// SharedMutexKey.
func (t *Trial) RunSharedLock() int64 {
	elapsed := t.run(&t.shared)
	t.times[SharedMutexKey] = elapsed

	t.logger.Info("run finished",
		slog.String("strategy", SharedMutexKey),
		slog.Int64("elapsed_ms", elapsed),
	)

	return elapsed
}

// RunExclusiveLock measures one run where every access, read or write,
// takes a single sync.Mutex. It returns the elapsed wall-clock
// milliseconds and records them under StandardMutexKey.
func (t *Trial) RunExclusiveLock() int64 {
	elapsed := t.run(&t.excl)
	t.times[StandardMutexKey] = elapsed

	t.logger.Info("run finished",
		slog.String("strategy", StandardMutexKey),
		slog.Int64("elapsed_ms", elapsed),
	)

	return elapsed
}

// run spawns all reader and writer goroutines at once and joins them,
// timing the whole fork-join. Visibility of the record's fields relies
// entirely on the lock's acquire/release semantics.
func (t *Trial) run(lock rwLock) int64 {
	start := time.Now()

	var g errgroup.Group

	for i := 0; i < t.cfg.Readers; i++ {
		g.Go(func() error {
			// Accumulate into a sink so the reads are not dead code.
			sink := 0

			for j := 0; j < t.cfg.Reads; j++ {
				lock.RLock()
				counter := t.record.Counter
				text := t.record.Text
				lock.RUnlock()

				sink += counter + len(text)
			}

			_ = sink

			return nil
		})
	}

	for i := 0; i < t.cfg.Writers; i++ {
		g.Go(func() error {
			gen := payload.NewGenerator()

			for j := 0; j < t.cfg.Updates; j++ {
				lock.Lock()
				t.record.Counter++
				t.record.Text = gen.Generate(PayloadLength)
				lock.Unlock()
			}

			return nil
		})
	}

	// Workers have no fallible operations; Wait only joins them.
	_ = g.Wait()

	return time.Since(start).Milliseconds()
}

// TakeResult moves the recorded timings out of the trial together with
// a copy of the configuration counts. The trial's own timing map is
// consumed and must not be reused.
func (t *Trial) TakeResult() Result {
	r := Result{
		Readers: t.cfg.Readers,
		Writers: t.cfg.Writers,
		Reads:   t.cfg.Reads,
		Updates: t.cfg.Updates,
		Times:   t.times,
	}
	t.times = nil

	return r
}

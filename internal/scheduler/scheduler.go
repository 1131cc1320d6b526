package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"ProfitScanner/internal/model"
	"ProfitScanner/internal/notifier"
	"ProfitScanner/internal/recorder"
)

// BenchRunner produces a benchmark report.
type BenchRunner interface {
	Run(ctx context.Context) (*model.BenchReport, error)
}

// Scheduler runs the benchmark on a cron expression.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   BenchRunner
	Recorder recorder.Recorder
	Out      io.Writer
	Log      zerolog.Logger
	Ctx      context.Context

	mu      sync.Mutex
	last    *model.BenchReport
	running atomic.Bool
	wg      sync.WaitGroup
}

// NewScheduler creates a Scheduler. Overlapping runs are skipped rather than queued.
func NewScheduler(ctx context.Context, runner BenchRunner, rec recorder.Recorder, out io.Writer, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Runner:   runner,
		Recorder: rec,
		Out:      out,
		Log:      log,
		Ctx:      ctx,
	}
}

// Register adds the benchmark job under the given six-field cron spec.
func (s *Scheduler) Register(benchCron string) error {
	if _, err := s.Cron.AddFunc(benchCron, s.benchTask); err != nil {
		return fmt.Errorf("register bench task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the scheduler and waits for running jobs, including RunAsync ones.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.wg.Wait()
	s.Log.Info().Msg("scheduler stopped")
}

// RunNow executes the benchmark job immediately. It is skipped if a run is in progress.
func (s *Scheduler) RunNow() {
	s.benchTask()
}

// RunAsync starts the benchmark job in the background; Stop waits for it.
func (s *Scheduler) RunAsync() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.benchTask()
	}()
}

// Last returns the most recent successful report, or nil.
func (s *Scheduler) Last() *model.BenchReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) benchTask() {
	if !s.running.CompareAndSwap(false, true) {
		s.Log.Warn().Msg("benchmark still running, skipping")
		return
	}
	defer s.running.Store(false)

	s.Log.Info().Msg("running scheduled benchmark")
	report, err := s.Runner.Run(s.Ctx)
	if err != nil {
		s.Log.Error().Err(err).Msg("scheduled benchmark")
		return
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	if s.Out != nil {
		if _, err := io.WriteString(s.Out, notifier.FormatBenchReport(report)); err != nil {
			s.Log.Error().Err(err).Msg("write report")
		}
	}
	if s.Recorder != nil {
		if err := s.Recorder.RecordReport(report); err != nil {
			s.Log.Error().Err(err).Msg("record report")
		}
	}
}

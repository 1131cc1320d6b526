// Package bench times the best-trade scan across series sizes.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ProfitScanner/internal/calculator"
	"ProfitScanner/internal/collector"
	"ProfitScanner/internal/model"
)

// DefaultSizes are the series lengths timed when none are configured.
var DefaultSizes = []int{1_000, 10_000, 100_000, 1_000_000}

// DefaultRuns is the number of timed scans per size.
const DefaultRuns = 5

// Options controls which sizes are timed and how often.
type Options struct {
	Sizes       []int
	RunsPerSize int
}

// Observer receives every timed run and every finished row.
type Observer interface {
	ObserveRun(run model.BenchRun)
	ObserveRow(row model.BenchRow)
}

// Runner generates series, times the scan and aggregates the results.
type Runner struct {
	Fetcher  collector.Fetcher
	Options  Options
	Observer Observer
	Clock    func() time.Time
	Log      zerolog.Logger
}

// NewRunner creates a Runner with defaults filled in for empty options.
func NewRunner(fetcher collector.Fetcher, opts Options, log zerolog.Logger) *Runner {
	if len(opts.Sizes) == 0 {
		opts.Sizes = append([]int(nil), DefaultSizes...)
	}
	if opts.RunsPerSize <= 0 {
		opts.RunsPerSize = DefaultRuns
	}
	return &Runner{
		Fetcher: fetcher,
		Options: opts,
		Clock:   time.Now,
		Log:     log,
	}
}

// Run times RunsPerSize scans for each size. Series generation is outside the timed section.
func (r *Runner) Run(ctx context.Context) (*model.BenchReport, error) {
	if r.Fetcher == nil {
		return nil, errors.New("bench: nil fetcher")
	}
	if r.Options.RunsPerSize <= 0 {
		return nil, fmt.Errorf("bench: runs per size must be positive, got %d", r.Options.RunsPerSize)
	}
	now := r.Clock
	if now == nil {
		now = time.Now
	}

	report := &model.BenchReport{
		RunsPerSize: r.Options.RunsPerSize,
		StartedAt:   now(),
		Rows:        make([]model.BenchRow, 0, len(r.Options.Sizes)),
	}
	r.Log.Info().Int("runs", r.Options.RunsPerSize).Ints("sizes", r.Options.Sizes).
		Str("source", r.Fetcher.Name()).Msg("benchmark started")

	for _, size := range r.Options.Sizes {
		if size <= 0 {
			return nil, fmt.Errorf("bench: size must be positive, got %d", size)
		}
		durations := make([]time.Duration, 0, r.Options.RunsPerSize)

		for run := 0; run < r.Options.RunsPerSize; run++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("bench interrupted at size %d: %w", size, err)
			}
			series, err := r.Fetcher.FetchSeries(ctx, size)
			if err != nil {
				return nil, fmt.Errorf("fetch series of %d: %w", size, err)
			}

			start := now()
			_, found := calculator.FindBestTrade(series)
			elapsed := now().Sub(start)

			durations = append(durations, elapsed)
			if r.Observer != nil {
				r.Observer.ObserveRun(model.BenchRun{Size: size, Elapsed: elapsed, Found: found})
			}
		}

		row := Aggregate(size, durations)
		report.Rows = append(report.Rows, row)
		if r.Observer != nil {
			r.Observer.ObserveRow(row)
		}
		r.Log.Debug().Int("count", size).Dur("avg_per_10k", row.AvgPer10k).Msg("size done")
	}

	report.Elapsed = now().Sub(report.StartedAt)
	r.Log.Info().Dur("elapsed", report.Elapsed).Msg("benchmark finished")
	return report, nil
}

// Aggregate builds a row from the raw run durations. The per-10k average is
// computed in whole microseconds: sum(us * 10000 / count) / runs.
func Aggregate(count int, runs []time.Duration) model.BenchRow {
	row := model.BenchRow{Count: count, Runs: runs}
	if count <= 0 || len(runs) == 0 {
		return row
	}
	var total int64
	for _, d := range runs {
		total += d.Microseconds() * 10_000 / int64(count)
	}
	row.AvgPer10k = time.Duration(total/int64(len(runs))) * time.Microsecond
	return row
}

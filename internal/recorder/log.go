package recorder

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"ProfitScanner/internal/model"
)

// LogRecorder emits one structured log event per benchmark row.
type LogRecorder struct {
	mu     sync.Mutex
	log    zerolog.Logger
	closed bool
}

// NewLogRecorder creates a recorder writing through the given logger.
func NewLogRecorder(log zerolog.Logger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) RecordReport(report *model.BenchReport) error {
	if report == nil {
		return errors.New("nil report")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errors.New("recorder closed")
	}

	for _, row := range report.Rows {
		runs := make([]int64, len(row.Runs))
		for i, d := range row.Runs {
			runs[i] = d.Microseconds()
		}
		r.log.Info().
			Time("started_at", report.StartedAt).
			Int("count", row.Count).
			Ints64("runs_us", runs).
			Int64("avg_per_10k_us", row.AvgPer10k.Microseconds()).
			Msg("bench row")
	}
	return nil
}

func (r *LogRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

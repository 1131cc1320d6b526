package recorder

import "ProfitScanner/internal/model"

// Recorder receives finished benchmark reports.
type Recorder interface {
	RecordReport(report *model.BenchReport) error
	Close() error
}

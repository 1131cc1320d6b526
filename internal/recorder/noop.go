package recorder

import "ProfitScanner/internal/model"

// NoopRecorder discards every report.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordReport(_ *model.BenchReport) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }

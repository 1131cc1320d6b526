package model

import "time"

// BenchRun is one timed scan invocation.
type BenchRun struct {
	Size    int
	Elapsed time.Duration
	Found   bool
}

// BenchRow aggregates all runs for a single series size.
type BenchRow struct {
	Count     int
	Runs      []time.Duration
	AvgPer10k time.Duration // average scan time normalized to 10 000 elements
}

// BenchReport is the outcome of a full benchmark pass over every configured size.
type BenchReport struct {
	Rows        []BenchRow
	RunsPerSize int
	StartedAt   time.Time
	Elapsed     time.Duration
}

package collector

import "context"

// Fetcher supplies relative price series of a requested length.
type Fetcher interface {
	FetchSeries(ctx context.Context, count int) ([]int, error)
	Name() string
}

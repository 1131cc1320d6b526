package collector

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ErrInvalidRange is returned when Min >= Max or the range width overflows int.
var ErrInvalidRange = errors.New("min must be less than max and max-min must fit in int")

// ValidRange reports whether [min, max) is non-empty and its width fits in int.
func ValidRange(min, max int) bool {
	return min < max && max-min > 0
}

// RandomFetcher generates uniformly distributed deltas in [Min, Max).
type RandomFetcher struct {
	Min int
	Max int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFetcher creates a RandomFetcher. A zero seed picks a time-based one.
func NewRandomFetcher(min, max int, seed int64) (*RandomFetcher, error) {
	if !ValidRange(min, max) {
		return nil, fmt.Errorf("range [%d, %d): %w", min, max, ErrInvalidRange)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomFetcher{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

func (f *RandomFetcher) Name() string { return "random" }

// FetchSeries returns count fresh deltas.
func (f *RandomFetcher) FetchSeries(ctx context.Context, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative count %d", count)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span := f.Max - f.Min
	series := make([]int, count)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range series {
		series[i] = f.Min + f.rng.Intn(span)
	}
	return series, nil
}

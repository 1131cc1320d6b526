package collector

import (
	"context"
	"fmt"
)

// StaticFetcher replays a fixed series. Requests longer than the series cycle it;
// shorter requests truncate it. A count of -1 returns the series as-is.
type StaticFetcher struct {
	Series []int
}

func (s *StaticFetcher) Name() string { return "static" }

func (s *StaticFetcher) FetchSeries(_ context.Context, count int) ([]int, error) {
	if count == -1 {
		return append([]int(nil), s.Series...), nil
	}
	if count < 0 {
		return nil, fmt.Errorf("negative count %d", count)
	}
	if len(s.Series) == 0 && count > 0 {
		return nil, fmt.Errorf("static series is empty, cannot produce %d values", count)
	}
	out := make([]int, count)
	for i := range out {
		out[i] = s.Series[i%len(s.Series)]
	}
	return out, nil
}

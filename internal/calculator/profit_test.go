package calculator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfitScanner/internal/model"
)

func TestFindBestTrade_KnownSeries(t *testing.T) {
	cases := []struct {
		name   string
		deltas []int
		buy    int
		sell   int
		profit int
	}{
		{"later dip wins", []int{3, 5, -7, 3, 3, -2}, 2, 4, 6},
		{"first index is best buy", []int{0, 1, 2, -1, 2, 1, -3, 2, 1, -2, 5, -3, 2, -4, 5}, 0, 10, 8},
		{"lower dip after peak does not displace", []int{2, 1, 1, 1, -4}, 0, 3, 3},
		{"two elements rising", []int{10, 1}, 0, 1, 1},
		{"candidate promoted after rebound", []int{5, 5, -9, 2, -1, 20}, 2, 5, 21},
		{"rebound below confirmed buy price", []int{2, 1, -3, 2, 0, -1}, 2, 3, 2},
		{"late rebound below first peak", []int{10, 5, -14, 3, -1, -2, 6}, 2, 6, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trade, ok := FindBestTrade(tc.deltas)
			require.True(t, ok)
			assert.Equal(t, tc.buy, trade.BuyIndex)
			assert.Equal(t, tc.sell, trade.SellIndex)
			assert.Equal(t, tc.profit, trade.Profit)
			assert.Equal(t, trade.SellPrice-trade.BuyPrice, trade.Profit)
		})
	}
}

func TestFindBestTrade_NoTrade(t *testing.T) {
	cases := map[string][]int{
		"nil":                 nil,
		"empty":               {},
		"single positive":     {42},
		"single negative":     {-7},
		"strictly decreasing": {0, -1, -2, -1, -2},
		"flat":                {5, 0, 0, 0},
		"large drop":          {100, -1, -50, -1000},
	}

	for name, deltas := range cases {
		t.Run(name, func(t *testing.T) {
			trade, ok := FindBestTrade(deltas)
			assert.False(t, ok)
			assert.Equal(t, model.Trade{}, trade)
		})
	}
}

func TestFindBestTrade_TiesKeepEarliestPair(t *testing.T) {
	// prices: 3 8 1 6 -> both (0,1) and (2,3) earn 5
	trade, ok := FindBestTrade([]int{3, 5, -7, 5})
	require.True(t, ok)
	assert.Equal(t, 0, trade.BuyIndex)
	assert.Equal(t, 1, trade.SellIndex)

	// prices: 0 5 0 5 -> repeated minimum keeps the leftmost buy
	trade, ok = FindBestTrade([]int{0, 5, -5, 5})
	require.True(t, ok)
	assert.Equal(t, 0, trade.BuyIndex)
	assert.Equal(t, 1, trade.SellIndex)
}

func TestFindBestTrade_DoesNotMutateInput(t *testing.T) {
	deltas := []int{3, 5, -7, 3, 3, -2}
	snapshot := append([]int(nil), deltas...)
	FindBestTrade(deltas)
	assert.Equal(t, snapshot, deltas)
}

func TestFindBestTrade_Deterministic(t *testing.T) {
	deltas := randomDeltas(rand.New(rand.NewSource(7)), 500, -50, 50)
	first, ok1 := FindBestTrade(deltas)
	second, ok2 := FindBestTrade(deltas)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestFindBestTrade_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(20240901))
	for i := 0; i < 2000; i++ {
		n := rng.Intn(40)
		deltas := randomDeltas(rng, n, -5, 6)

		got, gotOK := FindBestTrade(deltas)
		want, wantOK := FindBestTradeBruteForce(deltas)

		require.Equal(t, wantOK, gotOK, "deltas=%v", deltas)
		require.Equal(t, want, got, "deltas=%v", deltas)
		if gotOK {
			require.Less(t, got.BuyIndex, got.SellIndex)
			p, err := Profit(deltas, got.BuyIndex, got.SellIndex)
			require.NoError(t, err)
			require.Equal(t, got.Profit, p)
			require.Positive(t, p)
		}
	}
}

func TestFindBestTrade_MatchesBruteForceWideRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 5000; i++ {
		deltas := randomDeltas(rng, 2+rng.Intn(12), -20, 21)

		got, gotOK := FindBestTrade(deltas)
		want, wantOK := FindBestTradeBruteForce(deltas)

		require.Equal(t, wantOK, gotOK, "deltas=%v", deltas)
		require.Equal(t, want, got, "deltas=%v", deltas)
	}
}

func TestFindBestTrade_StrictlyDecreasing(t *testing.T) {
	for n := 1; n < 50; n++ {
		deltas := make([]int, n)
		deltas[0] = 1000
		for i := 1; i < n; i++ {
			deltas[i] = -(i%3 + 1)
		}
		_, ok := FindBestTrade(deltas)
		assert.False(t, ok, "n=%d", n)
	}
}

func TestAbsolutePrices(t *testing.T) {
	assert.Equal(t, []int{3, 8, 1, 4, 7, 5}, AbsolutePrices([]int{3, 5, -7, 3, 3, -2}))
	assert.Empty(t, AbsolutePrices(nil))
}

func TestProfit(t *testing.T) {
	deltas := []int{3, 5, -7, 3, 3, -2}

	p, err := Profit(deltas, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, p)

	_, err = Profit(deltas, 4, 2)
	assert.ErrorIs(t, err, ErrNotOrdered)

	_, err = Profit(deltas, 3, 3)
	assert.ErrorIs(t, err, ErrNotOrdered)

	_, err = Profit(deltas, -1, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Profit(deltas, 0, len(deltas))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func randomDeltas(rng *rand.Rand, n, min, max int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = min + rng.Intn(max-min)
	}
	return out
}

func BenchmarkFindBestTrade(b *testing.B) {
	deltas := randomDeltas(rand.New(rand.NewSource(1)), 100_000, -50, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindBestTrade(deltas)
	}
}

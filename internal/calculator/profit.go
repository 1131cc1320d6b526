package calculator

import (
	"errors"
	"fmt"

	"ProfitScanner/internal/model"
)

var (
	// ErrIndexOutOfRange is returned when a buy or sell index falls outside the series.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotOrdered is returned when the buy index is not strictly before the sell index.
	ErrNotOrdered = errors.New("buy index must precede sell index")
)

// FindBestTrade scans relative price deltas once and returns the buy/sell pair
// with the largest strictly positive profit. ok is false for an empty series or
// when prices never rise above an earlier point.
//
// Ties keep the earliest pair found: leftmost buy, earliest sell.
func FindBestTrade(deltas []int) (trade model.Trade, ok bool) {
	if len(deltas) == 0 {
		return model.Trade{}, false
	}

	price := deltas[0]
	buyIdx, buyPrice := 0, price
	candIdx, candPrice := 0, price
	sellIdx, profit := 0, 0

	for i := 1; i < len(deltas); i++ {
		price += deltas[i]

		if price > buyPrice {
			if diff := price - buyPrice; diff > profit {
				profit = diff
				sellIdx = i
			}
		}
		// A rebound can beat the best profit while still at or below buyPrice.
		// candPrice <= buyPrice, so the buy only moves on a strict improvement.
		if diff := price - candPrice; diff > profit {
			profit = diff
			sellIdx = i
			buyIdx, buyPrice = candIdx, candPrice
		}

		// Leftmost minimum so far.
		if price < candPrice {
			candIdx, candPrice = i, price
		}
	}

	if profit <= 0 {
		return model.Trade{}, false
	}
	return model.Trade{
		BuyIndex:  buyIdx,
		SellIndex: sellIdx,
		BuyPrice:  buyPrice,
		SellPrice: buyPrice + profit,
		Profit:    profit,
	}, true
}

// FindBestTradeBruteForce checks every ordered pair. It is O(n²) and only
// meant as a reference for FindBestTrade; tie-breaking is identical.
func FindBestTradeBruteForce(deltas []int) (model.Trade, bool) {
	prices := AbsolutePrices(deltas)
	var best model.Trade
	found := false
	for s := 1; s < len(prices); s++ {
		for b := 0; b < s; b++ {
			diff := prices[s] - prices[b]
			if diff > best.Profit {
				best = model.Trade{
					BuyIndex:  b,
					SellIndex: s,
					BuyPrice:  prices[b],
					SellPrice: prices[s],
					Profit:    diff,
				}
				found = true
			}
		}
	}
	return best, found
}

// AbsolutePrices converts relative deltas into absolute prices (prefix sums).
func AbsolutePrices(deltas []int) []int {
	prices := make([]int, len(deltas))
	sum := 0
	for i, d := range deltas {
		sum += d
		prices[i] = sum
	}
	return prices
}

// Profit returns price[sell] - price[buy] for the given delta series.
func Profit(deltas []int, buy, sell int) (int, error) {
	if buy < 0 || sell < 0 || buy >= len(deltas) || sell >= len(deltas) {
		return 0, fmt.Errorf("buy=%d sell=%d len=%d: %w", buy, sell, len(deltas), ErrIndexOutOfRange)
	}
	if buy >= sell {
		return 0, fmt.Errorf("buy=%d sell=%d: %w", buy, sell, ErrNotOrdered)
	}
	diff := 0
	for i := buy + 1; i <= sell; i++ {
		diff += deltas[i]
	}
	return diff, nil
}

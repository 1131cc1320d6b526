package model

// Trade is a single buy/sell pair over a relative price series.
// Prices are absolute, i.e. the prefix sum of deltas through the index.
type Trade struct {
	BuyIndex  int
	SellIndex int
	BuyPrice  int
	SellPrice int
	Profit    int
}

package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the side of the book a price was quoted on.
type Side string

const (
	// SideAsk is the selling side.
	SideAsk Side = "ask"
	// SideBid is the buying side.
	SideBid Side = "bid"
)

// Quote is the value reported for one side of a rate.
type Quote struct {
	Timestamp time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
}

// FlatQuote builds a quote out of a single price sample.
func FlatQuote(timestamp time.Time, price decimal.Decimal) *Quote {
	return &Quote{
		Timestamp: timestamp,
		Open:      price,
		High:      price,
		Low:       price,
		Close:     price,
	}
}

// RateResult is the ask/bid pair resolved for one asset pair.
// Either side may be nil; both nil means there is no data.
type RateResult struct {
	AssetPairID string
	Ask         *Quote
	Bid         *Quote
}

// EmptyRate is the placeholder returned for an asset pair without data.
func EmptyRate(assetPairID string) *RateResult {
	return &RateResult{AssetPairID: assetPairID}
}

// HasData reports whether at least one side is present.
func (r *RateResult) HasData() bool {
	return r.Ask != nil || r.Bid != nil
}

package candle

import (
	"time"

	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
	"github.com/shopspring/decimal"
)

// Candle is the OHLC of one side of an asset pair over one bucket.
type Candle struct {
	BucketTime  time.Time
	AssetPairID string
	Granularity granularity.Granularity
	Side        v1.Side
	Open        decimal.Decimal
	High        decimal.Decimal
	Low         decimal.Decimal
	Close       decimal.Decimal
}

// Quote converts the candle into the quote reported for its side.
func (c *Candle) Quote() *v1.Quote {
	if c == nil {
		return nil
	}

	return &v1.Quote{
		Timestamp: c.BucketTime,
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
	}
}

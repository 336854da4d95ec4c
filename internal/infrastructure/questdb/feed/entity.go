package feed

import (
	"time"

	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/shopspring/decimal"
)

// PriceSample is one recorded price of one side of an asset pair.
type PriceSample struct {
	Timestamp   time.Time
	AssetPairID string
	Side        v1.Side
	Price       decimal.Decimal
}

package marketprofile

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedData is the current best bid and ask of one asset pair.
type FeedData struct {
	AssetPairID string          `json:"assetPairId"`
	Bid         decimal.Decimal `json:"bid"`
	Ask         decimal.Decimal `json:"ask"`
	DateTime    time.Time       `json:"dateTime"`
}

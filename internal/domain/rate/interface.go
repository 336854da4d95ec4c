package rate

import (
	"context"
	"time"

	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/questdb/feed"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/redis/marketprofile"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// ClosestPriceSource finds the latest price sample at or before a moment.
// A nil sample with a nil error means there is none.
type ClosestPriceSource interface {
	ClosestAtOrBefore(ctx context.Context, assetPairID string, side v1.Side, at time.Time) (*feed.PriceSample, error)
}

// PeriodCandleSource finds the candle of the bucket containing a moment.
// A nil candle with a nil error means there is none.
type PeriodCandleSource interface {
	CandleFor(ctx context.Context, assetPairID string, g granularity.Granularity, side v1.Side, at time.Time) (*candle.Candle, error)
}

// MarketProfileSource reads the current best bid/ask per asset pair.
type MarketProfileSource interface {
	GetAll(ctx context.Context) ([]*marketprofile.FeedData, error)
	Get(ctx context.Context, assetPairID string) (*marketprofile.FeedData, error)
}

// Usecase is the interface for the rate usecase.
type Usecase interface {
	ResolveHistory(ctx context.Context, assetPairIDs []string, g granularity.Granularity, at time.Time) ([]*v1.RateResult, error)
	ResolveCandle(ctx context.Context, assetPairID string, g granularity.Granularity, at time.Time) (*v1.RateResult, error)
	CurrentRates(ctx context.Context) ([]*marketprofile.FeedData, error)
	CurrentRate(ctx context.Context, assetPairID string) (*marketprofile.FeedData, error)
}

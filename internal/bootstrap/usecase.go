package bootstrap

import (
	assetpairDomain "github.com/muhammadchandra19/public-api/internal/domain/assetpair"
	rateDomain "github.com/muhammadchandra19/public-api/internal/domain/rate"
	assetpairUc "github.com/muhammadchandra19/public-api/internal/usecase/assetpair"
	rateUc "github.com/muhammadchandra19/public-api/internal/usecase/rate"
	"github.com/muhammadchandra19/public-api/pkg/snapshot"
)

// Usecase is the usecase for the public api.
type Usecase struct {
	AssetPairUsecase assetpairDomain.Catalog
	RateUsecase      rateDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() error {
	b.Usecase.AssetPairUsecase = assetpairUc.NewUsecase(
		b.Repository.AssetPairSource,
		b.Repository.AssetPairPurger,
		snapshot.Options{
			TTL:          b.Config.Catalog.TTL,
			RetryBackoff: b.Config.Catalog.RetryBackoff,
			LoadTimeout:  b.Config.Catalog.LoadTimeout,
			Observer:     b.Metrics,
		},
		b.Logger,
	)

	granularities, err := b.Config.Rates.Granularities()
	if err != nil {
		return err
	}

	lookupTimeout := b.Config.Rates.LookupTimeout
	b.Usecase.RateUsecase = rateUc.NewUsecase(
		b.Usecase.AssetPairUsecase,
		rateUc.NewClosestPriceLookup(b.Repository.FeedRepository, lookupTimeout, b.Metrics),
		rateUc.NewPeriodCandleLookup(b.Repository.CandleRepository, lookupTimeout, b.Metrics),
		b.Repository.MarketProfileRepository,
		rateUc.Config{
			SupportedGranularities: granularities,
			MaxBatchSize:           b.Config.Rates.MaxBatchSize,
			MaxConcurrency:         b.Config.Rates.MaxConcurrency,
		},
		b.Logger,
	)

	return nil
}

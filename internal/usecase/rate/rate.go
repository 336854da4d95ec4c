package rate

import (
	"context"
	"fmt"
	"strings"
	"time"

	assetpairDomain "github.com/muhammadchandra19/public-api/internal/domain/assetpair"
	domain "github.com/muhammadchandra19/public-api/internal/domain/rate"
	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/redis/marketprofile"
	"github.com/muhammadchandra19/public-api/pkg/errors"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

var _ domain.Usecase = (*Usecase)(nil)

// Config is the resolution policy.
type Config struct {
	// SupportedGranularities is the set ResolveHistory accepts.
	SupportedGranularities granularity.Set
	// MaxBatchSize caps the ids of one ResolveHistory call. Zero disables the cap.
	MaxBatchSize int
	// MaxConcurrency caps the asset pairs resolved at once per call. Zero is unbounded.
	MaxConcurrency int
}

// Usecase is the usecase for historical and current rates.
type Usecase struct {
	catalog assetpairDomain.Catalog
	closest *ClosestPriceLookup
	candles *PeriodCandleLookup
	profile domain.MarketProfileSource
	config  Config
	logger  logger.Interface
}

// NewUsecase creates a new rate usecase.
func NewUsecase(
	catalog assetpairDomain.Catalog,
	closest *ClosestPriceLookup,
	candles *PeriodCandleLookup,
	profile domain.MarketProfileSource,
	config Config,
	logger logger.Interface,
) *Usecase {
	if config.SupportedGranularities == nil {
		config.SupportedGranularities = granularity.NewSet(granularity.Day)
	}

	return &Usecase{
		catalog: catalog,
		closest: closest,
		candles: candles,
		profile: profile,
		config:  config,
		logger:  logger,
	}
}

// ResolveHistory returns one rate per requested id, in request order, built from the
// closest ask and bid at or before at. A pair missing either side, or whose lookup
// failed, gets an empty placeholder. The request is rejected as a whole only on
// invalid input, a dictionary load failure, or cancellation of ctx.
func (u *Usecase) ResolveHistory(ctx context.Context, assetPairIDs []string, g granularity.Granularity, at time.Time) ([]*v1.RateResult, error) {
	if err := u.validateHistory(ctx, assetPairIDs, g); err != nil {
		return nil, err
	}

	results := make([]*v1.RateResult, len(assetPairIDs))

	var group errgroup.Group
	if u.config.MaxConcurrency > 0 {
		group.SetLimit(u.config.MaxConcurrency)
	}

	for i, id := range assetPairIDs {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			results[i] = u.resolveClosest(ctx, id, at)
			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (u *Usecase) validateHistory(ctx context.Context, assetPairIDs []string, g granularity.Granularity) error {
	if !u.config.SupportedGranularities.Contains(g) {
		return errors.NewErrorDetails(
			fmt.Sprintf("Unsupported period %q, available: %s", g, strings.Join(u.config.SupportedGranularities.Names(), ", ")),
			string(errors.UnsupportedGranularityError),
			"period",
		)
	}

	if u.config.MaxBatchSize > 0 && len(assetPairIDs) > u.config.MaxBatchSize {
		return errors.NewErrorDetails(
			fmt.Sprintf("Maximum %d asset pairs allowed", u.config.MaxBatchSize),
			string(errors.BatchTooLargeError),
			"assetPairIds",
		)
	}

	active, err := u.catalog.ActiveIDs(ctx)
	if err != nil {
		return errors.TracerFromError(err)
	}

	var unknown []string
	for _, id := range assetPairIDs {
		if _, ok := active[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return errors.NewErrorDetailsWithObject(
			fmt.Sprintf("Unknown asset pair id present: %s", unknown[0]),
			string(errors.UnknownInstrumentError),
			"assetPairIds",
			unknown,
		)
	}

	return nil
}

func (u *Usecase) resolveClosest(ctx context.Context, assetPairID string, at time.Time) *v1.RateResult {
	var (
		ask, bid *v1.Quote
		group    errgroup.Group
	)

	group.Go(func() error {
		ask = u.closestSide(ctx, assetPairID, v1.SideAsk, at)
		return nil
	})
	group.Go(func() error {
		bid = u.closestSide(ctx, assetPairID, v1.SideBid, at)
		return nil
	})
	_ = group.Wait()

	if ask == nil || bid == nil {
		return v1.EmptyRate(assetPairID)
	}

	return &v1.RateResult{AssetPairID: assetPairID, Ask: ask, Bid: bid}
}

func (u *Usecase) closestSide(ctx context.Context, assetPairID string, side v1.Side, at time.Time) *v1.Quote {
	quote, err := u.closest.Lookup(ctx, assetPairID, side, at)
	if err != nil {
		if ctx.Err() == nil {
			u.logger.WarnContext(ctx, "Closest price lookup failed",
				logger.Field{Key: "asset_pair_id", Value: assetPairID},
				logger.Field{Key: "side", Value: string(side)},
				logger.Field{Key: "error", Value: err.Error()},
			)
		}
		return nil
	}
	return quote
}

// ResolveCandle returns the ask and bid candles of the bucket containing at.
// Missing sides stay nil.
func (u *Usecase) ResolveCandle(ctx context.Context, assetPairID string, g granularity.Granularity, at time.Time) (*v1.RateResult, error) {
	if !g.IsValid() {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("Unsupported period %q, available: %s", g, strings.Join(granularity.NewSet(granularity.All...).Names(), ", ")),
			string(errors.UnsupportedGranularityError),
			"period",
		)
	}

	_, ok, err := u.catalog.Get(ctx, assetPairID)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if !ok {
		return nil, errors.NewErrorDetailsWithObject(
			fmt.Sprintf("Unknown asset pair id present: %s", assetPairID),
			string(errors.UnknownInstrumentError),
			"assetPairId",
			[]string{assetPairID},
		)
	}

	result := &v1.RateResult{AssetPairID: assetPairID}

	var group errgroup.Group
	group.Go(func() error {
		var err error
		result.Ask, err = u.candles.Lookup(ctx, assetPairID, g, v1.SideAsk, at)
		return err
	})
	group.Go(func() error {
		var err error
		result.Bid, err = u.candles.Lookup(ctx, assetPairID, g, v1.SideBid, at)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return result, nil
}

// CurrentRates returns the market profile restricted to enabled pairs, ordered by id.
func (u *Usecase) CurrentRates(ctx context.Context) ([]*marketprofile.FeedData, error) {
	active, err := u.catalog.ActiveIDs(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	profile, err := u.profile.GetAll(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	rates := make([]*marketprofile.FeedData, 0, len(profile))
	for _, data := range profile {
		if _, ok := active[data.AssetPairID]; ok {
			rates = append(rates, data)
		}
	}
	return rates, nil
}

// CurrentRate returns the market profile entry of one enabled pair, nil when
// the pair is unknown, disabled, or has no entry.
func (u *Usecase) CurrentRate(ctx context.Context, assetPairID string) (*marketprofile.FeedData, error) {
	_, ok, err := u.catalog.Get(ctx, assetPairID)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if !ok {
		return nil, nil
	}

	data, err := u.profile.Get(ctx, assetPairID)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return data, nil
}

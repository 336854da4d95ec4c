package rate

import (
	"context"
	"errors"
	"time"

	domain "github.com/muhammadchandra19/public-api/internal/domain/rate"
	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
	"github.com/muhammadchandra19/public-api/pkg/metrics"
)

// Lookup kinds reported to the LookupObserver.
const (
	KindClosestPrice = "closest_price"
	KindPeriodCandle = "period_candle"
)

// LookupObserver is told the outcome of every lookup.
type LookupObserver interface {
	ObserveLookup(kind, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveLookup(string, string) {}

// ClosestPriceLookup turns the latest price sample at or before a moment into a flat quote.
type ClosestPriceLookup struct {
	source   domain.ClosestPriceSource
	timeout  time.Duration
	observer LookupObserver
}

// NewClosestPriceLookup creates a lookup bounded by timeout. Zero leaves it unbounded.
func NewClosestPriceLookup(source domain.ClosestPriceSource, timeout time.Duration, observer LookupObserver) *ClosestPriceLookup {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ClosestPriceLookup{source: source, timeout: timeout, observer: observer}
}

// Lookup returns nil without error when there is no sample.
func (l *ClosestPriceLookup) Lookup(ctx context.Context, assetPairID string, side v1.Side, at time.Time) (*v1.Quote, error) {
	lookupCtx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	sample, err := l.source.ClosestAtOrBefore(lookupCtx, assetPairID, side, at)
	l.observer.ObserveLookup(KindClosestPrice, outcome(ctx, sample != nil, err))
	if err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, nil
	}

	return v1.FlatQuote(sample.Timestamp, sample.Price), nil
}

// PeriodCandleLookup returns the candle of the bucket containing a moment as a quote.
type PeriodCandleLookup struct {
	source   domain.PeriodCandleSource
	timeout  time.Duration
	observer LookupObserver
}

// NewPeriodCandleLookup creates a lookup bounded by timeout. Zero leaves it unbounded.
func NewPeriodCandleLookup(source domain.PeriodCandleSource, timeout time.Duration, observer LookupObserver) *PeriodCandleLookup {
	if observer == nil {
		observer = nopObserver{}
	}
	return &PeriodCandleLookup{source: source, timeout: timeout, observer: observer}
}

// Lookup returns nil without error when there is no candle.
func (l *PeriodCandleLookup) Lookup(ctx context.Context, assetPairID string, g granularity.Granularity, side v1.Side, at time.Time) (*v1.Quote, error) {
	lookupCtx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	candle, err := l.source.CandleFor(lookupCtx, assetPairID, g, side, at)
	l.observer.ObserveLookup(KindPeriodCandle, outcome(ctx, candle != nil, err))
	if err != nil {
		return nil, err
	}

	return candle.Quote(), nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// outcome classifies a lookup; a deadline counts as a timeout only when the
// parent context was still alive.
func outcome(parent context.Context, found bool, err error) string {
	switch {
	case err != nil && errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil:
		return metrics.OutcomeTimeout
	case err != nil:
		return metrics.OutcomeError
	case found:
		return metrics.OutcomeFound
	default:
		return metrics.OutcomeNotFound
	}
}

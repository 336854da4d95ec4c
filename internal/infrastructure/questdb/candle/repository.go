package candle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
)

const candleForQuery = `SELECT timestamp, asset_pair_id, granularity, side, open, high, low, close
			  FROM candles
			  WHERE asset_pair_id = $1 AND granularity = $2 AND side = $3 AND timestamp = $4
			  LIMIT 1`

// Repository reads aggregated candles.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new candle repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// CandleFor returns the candle of the bucket containing at.
func (r *Repository) CandleFor(ctx context.Context, assetPairID string, g granularity.Granularity, side v1.Side, at time.Time) (*Candle, error) {
	var (
		candle         = &Candle{}
		rawGranularity string
		rawSide        string
	)

	err := r.client.QueryRow(ctx, candleForQuery, assetPairID, g.String(), string(side), g.BucketStart(at)).Scan(
		&candle.BucketTime, &candle.AssetPairID, &rawGranularity, &rawSide,
		&candle.Open, &candle.High, &candle.Low, &candle.Close)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candle: %w", err)
	}

	candle.Granularity = granularity.Granularity(rawGranularity)
	candle.Side = v1.Side(rawSide)
	return candle, nil
}

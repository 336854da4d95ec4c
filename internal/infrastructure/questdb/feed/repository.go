package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
)

const closestAtOrBeforeQuery = `SELECT timestamp, asset_pair_id, side, price
			  FROM feed_history
			  WHERE asset_pair_id = $1 AND side = $2 AND timestamp <= $3
			  ORDER BY timestamp DESC
			  LIMIT 1`

// Repository reads the price feed history.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new feed history repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// ClosestAtOrBefore returns the latest sample of the given side recorded at or before at.
func (r *Repository) ClosestAtOrBefore(ctx context.Context, assetPairID string, side v1.Side, at time.Time) (*PriceSample, error) {
	var (
		sample  = &PriceSample{}
		rawSide string
	)

	err := r.client.QueryRow(ctx, closestAtOrBeforeQuery, assetPairID, string(side), at.UTC()).Scan(
		&sample.Timestamp, &sample.AssetPairID, &rawSide, &sample.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get closest price: %w", err)
	}

	sample.Side = v1.Side(rawSide)
	return sample, nil
}

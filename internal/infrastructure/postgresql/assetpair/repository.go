package assetpair

import (
	"context"
	"fmt"

	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/postgresql"
)

const loadAllQuery = `SELECT id, name, base_asset_id, quoting_asset_id, accuracy, inverted_accuracy, is_disabled FROM asset_pairs`

// Repository reads the asset pair dictionary from PostgreSQL.
type Repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates a new asset pair repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// LoadAll returns every asset pair, disabled ones included, keyed by id.
func (r *Repository) LoadAll(ctx context.Context) (map[string]*AssetPair, error) {
	rows, err := r.db.Query(ctx, loadAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset pairs: %w", err)
	}
	defer rows.Close()

	pairs := make(map[string]*AssetPair)
	for rows.Next() {
		pair := &AssetPair{}
		err := rows.Scan(
			&pair.ID,
			&pair.Name,
			&pair.BaseAssetID,
			&pair.QuotingAssetID,
			&pair.Accuracy,
			&pair.InvertedAccuracy,
			&pair.IsDisabled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset pair: %w", err)
		}
		pairs[pair.ID] = pair
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	r.logger.DebugContext(ctx, "Loaded asset pairs", logger.Field{Key: "count", Value: len(pairs)})

	return pairs, nil
}

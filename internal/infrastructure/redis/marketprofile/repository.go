package marketprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/redis"
)

const profileKey = "market_profile"

// Repository reads the market profile hash, one field per asset pair.
type Repository struct {
	client redis.Client
	logger logger.Interface
}

// NewRepository creates a new market profile repository.
func NewRepository(client redis.Client, logger logger.Interface) *Repository {
	return &Repository{
		client: client,
		logger: logger,
	}
}

// GetAll returns every entry of the profile ordered by asset pair id.
// Entries that can not be decoded are skipped.
func (r *Repository) GetAll(ctx context.Context) ([]*FeedData, error) {
	raw, err := r.client.HGetAll(ctx, r.client.Key(profileKey))
	if err != nil {
		return nil, fmt.Errorf("failed to read market profile: %w", err)
	}

	profile := make([]*FeedData, 0, len(raw))
	for field, value := range raw {
		data, err := decode(field, value)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping malformed market profile entry",
				logger.Field{Key: "asset_pair_id", Value: field},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		profile = append(profile, data)
	}

	sort.Slice(profile, func(i, j int) bool {
		return profile[i].AssetPairID < profile[j].AssetPairID
	})

	return profile, nil
}

// Get returns the entry of one asset pair, nil when absent.
func (r *Repository) Get(ctx context.Context, assetPairID string) (*FeedData, error) {
	value, err := r.client.HGet(ctx, r.client.Key(profileKey), assetPairID)
	if err != nil {
		return nil, fmt.Errorf("failed to read market profile entry: %w", err)
	}
	if value == "" {
		return nil, nil
	}

	data, err := decode(assetPairID, value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode market profile entry: %w", err)
	}
	return data, nil
}

func decode(field, value string) (*FeedData, error) {
	data := &FeedData{}
	if err := json.Unmarshal([]byte(value), data); err != nil {
		return nil, err
	}
	if data.AssetPairID == "" {
		data.AssetPairID = field
	}
	return data, nil
}

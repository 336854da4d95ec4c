package assetpair

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/redis"
)

const dictionaryKey = "dictionary:asset_pairs"

type source interface {
	LoadAll(ctx context.Context) (map[string]*assetpair.AssetPair, error)
}

// CachedSource keeps a copy of the asset pair dictionary in Redis so that
// every instance does not have to read it from PostgreSQL.
// Redis failures are logged and the backing source is used instead.
type CachedSource struct {
	next   source
	client redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewCachedSource wraps next with a shared Redis copy kept for ttl.
func NewCachedSource(next source, client redis.Client, ttl time.Duration, logger logger.Interface) *CachedSource {
	return &CachedSource{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// LoadAll returns the shared copy when present, otherwise loads from the
// backing source and stores the result.
func (s *CachedSource) LoadAll(ctx context.Context) (map[string]*assetpair.AssetPair, error) {
	key := s.client.Key(dictionaryKey)

	if pairs, ok := s.fromCache(ctx, key); ok {
		return pairs, nil
	}

	pairs, err := s.next.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, pairs)
	return pairs, nil
}

// Purge drops the shared copy.
func (s *CachedSource) Purge(ctx context.Context) error {
	_, err := s.client.Del(ctx, s.client.Key(dictionaryKey))
	return err
}

func (s *CachedSource) fromCache(ctx context.Context, key string) (map[string]*assetpair.AssetPair, bool) {
	raw, err := s.client.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read shared asset pair dictionary",
			logger.Field{Key: "error", Value: err.Error()})
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var list []*assetpair.AssetPair
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.WarnContext(ctx, "Discarding malformed shared asset pair dictionary",
			logger.Field{Key: "error", Value: err.Error()})
		return nil, false
	}

	pairs := make(map[string]*assetpair.AssetPair, len(list))
	for _, pair := range list {
		pairs[pair.ID] = pair
	}
	return pairs, true
}

func (s *CachedSource) store(ctx context.Context, key string, pairs map[string]*assetpair.AssetPair) {
	list := make([]*assetpair.AssetPair, 0, len(pairs))
	for _, pair := range pairs {
		list = append(list, pair)
	}

	payload, err := json.Marshal(list)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "encode shared asset pair dictionary"})
		return
	}

	if err := s.client.Set(ctx, key, string(payload), s.ttl); err != nil {
		s.logger.WarnContext(ctx, "Failed to write shared asset pair dictionary",
			logger.Field{Key: "error", Value: err.Error()})
	}
}

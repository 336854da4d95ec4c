package bootstrap

import (
	assetpairDomain "github.com/muhammadchandra19/public-api/internal/domain/assetpair"
	assetpairInfra "github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
	candleInfra "github.com/muhammadchandra19/public-api/internal/infrastructure/questdb/candle"
	feedInfra "github.com/muhammadchandra19/public-api/internal/infrastructure/questdb/feed"
	assetpairCache "github.com/muhammadchandra19/public-api/internal/infrastructure/redis/assetpair"
	marketprofileInfra "github.com/muhammadchandra19/public-api/internal/infrastructure/redis/marketprofile"
)

// Repository is the repository for the public api.
type Repository struct {
	FeedRepository          *feedInfra.Repository
	CandleRepository        *candleInfra.Repository
	AssetPairRepository     *assetpairInfra.Repository
	MarketProfileRepository *marketprofileInfra.Repository

	// AssetPairSource is the catalog loader, the Redis copy in front of
	// PostgreSQL unless the shared cache is disabled.
	AssetPairSource assetpairDomain.Source
	AssetPairPurger assetpairDomain.Purger
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.FeedRepository = feedInfra.NewRepository(b.QuestDB)
	b.Repository.CandleRepository = candleInfra.NewRepository(b.QuestDB)
	b.Repository.AssetPairRepository = assetpairInfra.NewRepository(b.Postgres, b.Logger)
	b.Repository.MarketProfileRepository = marketprofileInfra.NewRepository(b.Redis, b.Logger)

	b.Repository.AssetPairSource = b.Repository.AssetPairRepository
	if ttl := b.Config.Catalog.SharedCacheTTL; ttl > 0 {
		cached := assetpairCache.NewCachedSource(b.Repository.AssetPairRepository, b.Redis, ttl, b.Logger)
		b.Repository.AssetPairSource = cached
		b.Repository.AssetPairPurger = cached
	}
}

package assetpair

import (
	"context"
	"sort"

	domain "github.com/muhammadchandra19/public-api/internal/domain/assetpair"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
	"github.com/muhammadchandra19/public-api/pkg/errors"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/snapshot"
)

// CacheName identifies the asset pair snapshot in errors and metrics.
const CacheName = "asset_pairs"

var _ domain.Catalog = (*Usecase)(nil)

// Usecase serves the asset pair dictionary out of a refreshable snapshot.
// Disabled pairs stay in the snapshot and are filtered on every read.
type Usecase struct {
	cache  *snapshot.Cache[string, *assetpair.AssetPair]
	purger domain.Purger
	logger logger.Interface
}

// NewUsecase creates a new asset pair usecase. purger may be nil when
// there is no shared copy to drop on invalidation.
func NewUsecase(source domain.Source, purger domain.Purger, opts snapshot.Options, logger logger.Interface) *Usecase {
	return &Usecase{
		cache:  snapshot.New(CacheName, snapshot.Loader[string, *assetpair.AssetPair](source.LoadAll), opts),
		purger: purger,
		logger: logger,
	}
}

// ActiveIDs returns the ids of every enabled pair.
func (u *Usecase) ActiveIDs(ctx context.Context) (map[string]struct{}, error) {
	pairs, err := u.cache.GetAll(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	ids := make(map[string]struct{}, len(pairs))
	for id, pair := range pairs {
		if !pair.IsDisabled {
			ids[id] = struct{}{}
		}
	}
	return ids, nil
}

// Get returns an enabled pair. Disabled and unknown pairs report false.
func (u *Usecase) Get(ctx context.Context, id string) (*assetpair.AssetPair, bool, error) {
	pair, ok, err := u.cache.Get(ctx, id)
	if err != nil {
		return nil, false, errors.TracerFromError(err)
	}
	if !ok || pair.IsDisabled {
		return nil, false, nil
	}
	return pair, true, nil
}

// ListActive returns the enabled pairs ordered by id.
func (u *Usecase) ListActive(ctx context.Context) ([]*assetpair.AssetPair, error) {
	pairs, err := u.cache.GetAll(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	active := make([]*assetpair.AssetPair, 0, len(pairs))
	for _, pair := range pairs {
		if !pair.IsDisabled {
			active = append(active, pair)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].ID < active[j].ID
	})
	return active, nil
}

// Invalidate drops the shared copy, if any, and marks the local snapshot stale.
// The local snapshot is invalidated even when the shared copy can not be dropped.
func (u *Usecase) Invalidate(ctx context.Context) error {
	defer u.cache.Invalidate()

	if u.purger == nil {
		return nil
	}

	if err := u.purger.Purge(ctx); err != nil {
		u.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "purge shared asset pair dictionary"})
		return errors.TracerFromError(err)
	}
	return nil
}

package assetpair

import (
	"context"

	"github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Source loads the complete asset pair dictionary keyed by id.
type Source interface {
	LoadAll(ctx context.Context) (map[string]*assetpair.AssetPair, error)
}

// Purger drops a shared copy of the dictionary.
type Purger interface {
	Purge(ctx context.Context) error
}

// Catalog is the interface for the asset pair usecase.
type Catalog interface {
	ActiveIDs(ctx context.Context) (map[string]struct{}, error)
	Get(ctx context.Context, id string) (*assetpair.AssetPair, bool, error)
	ListActive(ctx context.Context) ([]*assetpair.AssetPair, error)
	Invalidate(ctx context.Context) error
}

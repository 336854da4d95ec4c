package assetpair

import (
	"context"
	"errors"
	"testing"
	"time"

	assetpairMock "github.com/muhammadchandra19/public-api/internal/domain/assetpair/mock"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	redisMock "github.com/muhammadchandra19/public-api/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const prefixedKey = "publicapi:dictionary:asset_pairs"

func TestCachedSource_LoadAll(t *testing.T) {
	ctx := context.Background()
	btc := &assetpair.AssetPair{ID: "BTCUSD", Name: "BTC/USD", BaseAssetID: "BTC", QuotingAssetID: "USD", Accuracy: 3, InvertedAccuracy: 8}
	cached := `[{"id":"BTCUSD","name":"BTC/USD","baseAssetId":"BTC","quotingAssetId":"USD","accuracy":3,"invertedAccuracy":8,"isDisabled":false}]`

	testCases := []struct {
		name     string
		mockFn   func(client *redisMock.MockClient, next *assetpairMock.MockSource)
		assertFn func(t *testing.T, pairs map[string]*assetpair.AssetPair, err error)
	}{
		{
			name: "served from redis",
			mockFn: func(client *redisMock.MockClient, next *assetpairMock.MockSource) {
				client.EXPECT().Key(dictionaryKey).Return(prefixedKey)
				client.EXPECT().Get(ctx, prefixedKey).Return(cached, nil)
			},
			assertFn: func(t *testing.T, pairs map[string]*assetpair.AssetPair, err error) {
				assert.NoError(t, err)
				assert.Equal(t, map[string]*assetpair.AssetPair{"BTCUSD": btc}, pairs)
			},
		},
		{
			name: "miss loads from source and writes back",
			mockFn: func(client *redisMock.MockClient, next *assetpairMock.MockSource) {
				client.EXPECT().Key(dictionaryKey).Return(prefixedKey)
				client.EXPECT().Get(ctx, prefixedKey).Return("", nil)
				next.EXPECT().LoadAll(ctx).Return(map[string]*assetpair.AssetPair{"BTCUSD": btc}, nil)
				client.EXPECT().Set(ctx, prefixedKey, cached, time.Minute).Return(nil)
			},
			assertFn: func(t *testing.T, pairs map[string]*assetpair.AssetPair, err error) {
				assert.NoError(t, err)
				assert.Equal(t, btc, pairs["BTCUSD"])
			},
		},
		{
			name: "redis down falls back to source",
			mockFn: func(client *redisMock.MockClient, next *assetpairMock.MockSource) {
				client.EXPECT().Key(dictionaryKey).Return(prefixedKey)
				client.EXPECT().Get(ctx, prefixedKey).Return("", errors.New("connection refused"))
				next.EXPECT().LoadAll(ctx).Return(map[string]*assetpair.AssetPair{"BTCUSD": btc}, nil)
				client.EXPECT().Set(ctx, prefixedKey, gomock.Any(), time.Minute).Return(errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, pairs map[string]*assetpair.AssetPair, err error) {
				assert.NoError(t, err)
				assert.Len(t, pairs, 1)
			},
		},
		{
			name: "malformed copy is ignored",
			mockFn: func(client *redisMock.MockClient, next *assetpairMock.MockSource) {
				client.EXPECT().Key(dictionaryKey).Return(prefixedKey)
				client.EXPECT().Get(ctx, prefixedKey).Return("{not json", nil)
				next.EXPECT().LoadAll(ctx).Return(map[string]*assetpair.AssetPair{}, nil)
				client.EXPECT().Set(ctx, prefixedKey, "[]", time.Minute).Return(nil)
			},
			assertFn: func(t *testing.T, pairs map[string]*assetpair.AssetPair, err error) {
				assert.NoError(t, err)
				assert.Empty(t, pairs)
			},
		},
		{
			name: "source failure is returned",
			mockFn: func(client *redisMock.MockClient, next *assetpairMock.MockSource) {
				client.EXPECT().Key(dictionaryKey).Return(prefixedKey)
				client.EXPECT().Get(ctx, prefixedKey).Return("", nil)
				next.EXPECT().LoadAll(ctx).Return(nil, errors.New("postgres down"))
			},
			assertFn: func(t *testing.T, pairs map[string]*assetpair.AssetPair, err error) {
				assert.EqualError(t, err, "postgres down")
				assert.Nil(t, pairs)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redisMock.NewMockClient(ctrl)
			next := assetpairMock.NewMockSource(ctrl)
			tc.mockFn(client, next)

			source := NewCachedSource(next, client, time.Minute, logger.NewNop())
			pairs, err := source.LoadAll(ctx)
			tc.assertFn(t, pairs, err)
		})
	}
}

func TestCachedSource_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := redisMock.NewMockClient(ctrl)
	client.EXPECT().Key(dictionaryKey).Return(prefixedKey)
	client.EXPECT().Del(ctx, prefixedKey).Return(int64(1), nil)

	source := NewCachedSource(assetpairMock.NewMockSource(ctrl), client, time.Minute, logger.NewNop())
	assert.NoError(t, source.Purge(ctx))
}

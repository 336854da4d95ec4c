package marketprofile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadchandra19/public-api/pkg/logger"
	redisMock "github.com/muhammadchandra19/public-api/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const prefixedKey = "publicapi:market_profile"

func TestMarketProfile_GetAll(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(client *redisMock.MockClient)
		assertFn func(t *testing.T, profile []*FeedData, err error)
	}{
		{
			name: "sorted and decoded",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGetAll(ctx, prefixedKey).Return(map[string]string{
					"ETHUSD": `{"bid":"3100.1","ask":"3101.4","dateTime":"2024-03-01T12:00:00Z"}`,
					"BTCUSD": `{"assetPairId":"BTCUSD","bid":64000,"ask":64010.5,"dateTime":"2024-03-01T12:00:01Z"}`,
				}, nil)
			},
			assertFn: func(t *testing.T, profile []*FeedData, err error) {
				assert.NoError(t, err)
				assert.Len(t, profile, 2)
				assert.Equal(t, "BTCUSD", profile[0].AssetPairID)
				assert.Equal(t, "64010.5", profile[0].Ask.String())
				assert.Equal(t, "ETHUSD", profile[1].AssetPairID)
				assert.Equal(t, "3100.1", profile[1].Bid.String())
				assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), profile[1].DateTime.UTC())
			},
		},
		{
			name: "malformed entry skipped",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGetAll(ctx, prefixedKey).Return(map[string]string{
					"BTCUSD": `{"bid":"1","ask":"2"}`,
					"XRPUSD": `oops`,
				}, nil)
			},
			assertFn: func(t *testing.T, profile []*FeedData, err error) {
				assert.NoError(t, err)
				assert.Len(t, profile, 1)
				assert.Equal(t, "BTCUSD", profile[0].AssetPairID)
			},
		},
		{
			name: "redis error",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGetAll(ctx, prefixedKey).Return(nil, errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, profile []*FeedData, err error) {
				assert.ErrorContains(t, err, "failed to read market profile")
				assert.Nil(t, profile)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redisMock.NewMockClient(ctrl)
			tc.mockFn(client)

			repo := NewRepository(client, logger.NewNop())
			profile, err := repo.GetAll(ctx)
			tc.assertFn(t, profile, err)
		})
	}
}

func TestMarketProfile_Get(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(client *redisMock.MockClient)
		assertFn func(t *testing.T, data *FeedData, err error)
	}{
		{
			name: "found",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGet(ctx, prefixedKey, "BTCUSD").Return(`{"bid":"64000","ask":"64010"}`, nil)
			},
			assertFn: func(t *testing.T, data *FeedData, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "BTCUSD", data.AssetPairID)
				assert.Equal(t, "64010", data.Ask.String())
			},
		},
		{
			name: "absent",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGet(ctx, prefixedKey, "BTCUSD").Return("", nil)
			},
			assertFn: func(t *testing.T, data *FeedData, err error) {
				assert.NoError(t, err)
				assert.Nil(t, data)
			},
		},
		{
			name: "malformed",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGet(ctx, prefixedKey, "BTCUSD").Return("oops", nil)
			},
			assertFn: func(t *testing.T, data *FeedData, err error) {
				assert.ErrorContains(t, err, "failed to decode market profile entry")
				assert.Nil(t, data)
			},
		},
		{
			name: "redis error",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Key(profileKey).Return(prefixedKey)
				client.EXPECT().HGet(ctx, prefixedKey, "BTCUSD").Return("", errors.New("timeout"))
			},
			assertFn: func(t *testing.T, data *FeedData, err error) {
				assert.ErrorContains(t, err, "failed to read market profile entry")
				assert.Nil(t, data)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redisMock.NewMockClient(ctrl)
			tc.mockFn(client)

			repo := NewRepository(client, logger.NewNop())
			data, err := repo.Get(ctx, "BTCUSD")
			tc.assertFn(t, data, err)
		})
	}
}

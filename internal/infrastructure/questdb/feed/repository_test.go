package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	mock "github.com/muhammadchandra19/public-api/pkg/questdb/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFeedRepository_ClosestAtOrBefore(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sampledAt := at.Add(-3 * time.Minute)

	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface)
		assertFn func(t *testing.T, err error, sample *PriceSample)
	}{
		{
			name: "success",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), closestAtOrBeforeQuery, "BTCUSD", "ask", at).Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*time.Time) = sampledAt
					*dest[1].(*string) = "BTCUSD"
					*dest[2].(*string) = "ask"
					*dest[3].(*decimal.Decimal) = decimal.RequireFromString("64250.5")
					return nil
				})
			},
			assertFn: func(t *testing.T, err error, sample *PriceSample) {
				assert.NoError(t, err)
				assert.Equal(t, "BTCUSD", sample.AssetPairID)
				assert.Equal(t, v1.SideAsk, sample.Side)
				assert.Equal(t, sampledAt, sample.Timestamp)
				assert.Equal(t, "64250.5", sample.Price.String())
			},
		},
		{
			name: "no rows",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), closestAtOrBeforeQuery, "BTCUSD", "ask", at).Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).Return(pgx.ErrNoRows)
			},
			assertFn: func(t *testing.T, err error, sample *PriceSample) {
				assert.NoError(t, err)
				assert.Nil(t, sample)
			},
		},
		{
			name: "query fails",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), closestAtOrBeforeQuery, "BTCUSD", "ask", at).Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).Return(errors.New("connection reset"))
			},
			assertFn: func(t *testing.T, err error, sample *PriceSample) {
				assert.ErrorContains(t, err, "failed to get closest price")
				assert.Nil(t, sample)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock.NewMockQuestDBClient(ctrl)
			mockRows := mock.NewMockRowsInterface(ctrl)
			tc.mockFn(mockClient, mockRows)

			repo := NewRepository(mockClient)
			sample, err := repo.ClosestAtOrBefore(context.Background(), "BTCUSD", v1.SideAsk, at)
			tc.assertFn(t, err, sample)
		})
	}
}

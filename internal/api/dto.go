package api

import (
	"time"

	v1 "github.com/muhammadchandra19/public-api/internal/domain/rate/v1"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
	"github.com/muhammadchandra19/public-api/internal/infrastructure/redis/marketprofile"
)

// HistoryRequest is the body of POST rate/history.
type HistoryRequest struct {
	Period       string    `json:"period" binding:"required"`
	DateTime     time.Time `json:"dateTime" binding:"required"`
	AssetPairIDs []string  `json:"assetPairIds" binding:"required"`
}

// CandleRequest is the body of POST rate/history/{assetPairId}.
type CandleRequest struct {
	Period   string    `json:"period" binding:"required"`
	DateTime time.Time `json:"dateTime" binding:"required"`
}

// AssetPairResponse is one dictionary entry.
type AssetPairResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Accuracy         int    `json:"accuracy"`
	InvertedAccuracy int    `json:"invertedAccuracy"`
	BaseAssetID      string `json:"baseAssetId"`
	QuotingAssetID   string `json:"quotingAssetId"`
}

// QuoteResponse is one side of a historical rate.
type QuoteResponse struct {
	DateTime time.Time `json:"dateTime"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
}

// HistoryRateResponse is the historical rate of one asset pair.
// Ask and Bid are null when there is no data.
type HistoryRateResponse struct {
	ID  string         `json:"id"`
	Ask *QuoteResponse `json:"ask"`
	Bid *QuoteResponse `json:"bid"`
}

// RateResponse is the current rate of one asset pair.
type RateResponse struct {
	ID  string  `json:"id"`
	Bid float64 `json:"bid"`
	Ask float64 `json:"ask"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code  string `json:"code"`
	Msg   string `json:"msg"`
	Field string `json:"field,omitempty"`
}

func toAssetPairResponse(pair *assetpair.AssetPair) AssetPairResponse {
	return AssetPairResponse{
		ID:               pair.ID,
		Name:             pair.Name,
		Accuracy:         pair.Accuracy,
		InvertedAccuracy: pair.InvertedAccuracy,
		BaseAssetID:      pair.BaseAssetID,
		QuotingAssetID:   pair.QuotingAssetID,
	}
}

func toQuoteResponse(quote *v1.Quote) *QuoteResponse {
	if quote == nil {
		return nil
	}

	return &QuoteResponse{
		DateTime: quote.Timestamp.UTC(),
		Open:     quote.Open.InexactFloat64(),
		High:     quote.High.InexactFloat64(),
		Low:      quote.Low.InexactFloat64(),
		Close:    quote.Close.InexactFloat64(),
	}
}

func toHistoryRateResponse(result *v1.RateResult) HistoryRateResponse {
	return HistoryRateResponse{
		ID:  result.AssetPairID,
		Ask: toQuoteResponse(result.Ask),
		Bid: toQuoteResponse(result.Bid),
	}
}

func toRateResponse(data *marketprofile.FeedData) RateResponse {
	return RateResponse{
		ID:  data.AssetPairID,
		Bid: data.Bid.InexactFloat64(),
		Ask: data.Ask.InexactFloat64(),
	}
}

package v1

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFlatQuote(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("64250.5")

	q := FlatQuote(ts, price)

	assert.Equal(t, ts, q.Timestamp)
	assert.True(t, q.Open.Equal(price))
	assert.True(t, q.High.Equal(price))
	assert.True(t, q.Low.Equal(price))
	assert.True(t, q.Close.Equal(price))
}

func TestRateResult_HasData(t *testing.T) {
	assert.False(t, EmptyRate("BTCUSD").HasData())
	assert.True(t, (&RateResult{AssetPairID: "BTCUSD", Bid: &Quote{}}).HasData())
}

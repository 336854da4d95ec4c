package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	assetpairDomain "github.com/muhammadchandra19/public-api/internal/domain/assetpair"
	rateDomain "github.com/muhammadchandra19/public-api/internal/domain/rate"
	"github.com/muhammadchandra19/public-api/pkg/errors"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
	"github.com/muhammadchandra19/public-api/pkg/logger"
)

// AssetPairHandler serves /api/AssetPairs.
type AssetPairHandler struct {
	catalog assetpairDomain.Catalog
	rates   rateDomain.Usecase
	logger  logger.Interface
}

// NewAssetPairHandler creates a new AssetPairHandler.
func NewAssetPairHandler(catalog assetpairDomain.Catalog, rates rateDomain.Usecase, logger logger.Interface) *AssetPairHandler {
	return &AssetPairHandler{
		catalog: catalog,
		rates:   rates,
		logger:  logger,
	}
}

// RegisterRoutes binds the handler to router.
func (h *AssetPairHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api/AssetPairs")
	{
		api.GET("/dictionary", h.GetDictionary)
		api.GET("/rate", h.GetRates)
		api.GET("/rate/:assetPairId", h.GetRate)
		api.POST("/rate/history", h.GetHistoryRates)
		api.POST("/rate/history/:assetPairId", h.GetHistoryRate)
	}
}

// GetDictionary lists the enabled asset pairs.
func (h *AssetPairHandler) GetDictionary(c *gin.Context) {
	pairs, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	res := make([]AssetPairResponse, 0, len(pairs))
	for _, pair := range pairs {
		res = append(res, toAssetPairResponse(pair))
	}
	c.JSON(http.StatusOK, res)
}

// GetRates returns the current rate of every enabled asset pair.
func (h *AssetPairHandler) GetRates(c *gin.Context) {
	rates, err := h.rates.CurrentRates(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	res := make([]RateResponse, 0, len(rates))
	for _, rate := range rates {
		res = append(res, toRateResponse(rate))
	}
	c.JSON(http.StatusOK, res)
}

// GetRate returns the current rate of one asset pair.
func (h *AssetPairHandler) GetRate(c *gin.Context) {
	id := c.Param("assetPairId")

	rate, err := h.rates.CurrentRate(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if rate == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:  string(errors.GeneralNotFoundError),
			Msg:   "No rate for asset pair " + id,
			Field: "assetPairId",
		})
		return
	}

	c.JSON(http.StatusOK, toRateResponse(rate))
}

// GetHistoryRates returns the closest ask/bid at or before dateTime for each
// requested asset pair, in request order.
func (h *AssetPairHandler) GetHistoryRates(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, invalidInput("Invalid request body: "+err.Error(), "body"))
		return
	}

	g, err := parsePeriod(req.Period)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	results, err := h.rates.ResolveHistory(c.Request.Context(), req.AssetPairIDs, g, req.DateTime)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	res := make([]HistoryRateResponse, 0, len(results))
	for _, result := range results {
		res = append(res, toHistoryRateResponse(result))
	}
	c.JSON(http.StatusOK, res)
}

// GetHistoryRate returns the ask and bid candles of one asset pair for the
// period containing dateTime.
func (h *AssetPairHandler) GetHistoryRate(c *gin.Context) {
	var req CandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, invalidInput("Invalid request body: "+err.Error(), "body"))
		return
	}

	g, err := parsePeriod(req.Period)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	result, err := h.rates.ResolveCandle(c.Request.Context(), c.Param("assetPairId"), g, req.DateTime)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toHistoryRateResponse(result))
}

func parsePeriod(period string) (granularity.Granularity, error) {
	g, err := granularity.Parse(period)
	if err != nil {
		return "", errors.NewErrorDetails(
			"Unsupported period "+period,
			string(errors.UnsupportedGranularityError),
			"period",
		)
	}
	return g, nil
}

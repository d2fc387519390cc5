package handlers

import (
	"net/http"

	"tripdesk/models"
	"tripdesk/services/search"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler exposes the package-search pipeline over HTTP.
type SearchHandler struct {
	Service search.SearchService
	Logger  *zap.Logger
}

func NewSearchHandler(svc search.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Service: svc, Logger: logger}
}

// SearchPackages runs a full 7-day package search for the posted request.
func (h *SearchHandler) SearchPackages(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search request", err.Error())
		return
	}

	result, err := h.Service.SearchPackages(c.Request.Context(), req)
	if err != nil {
		// Only an unusable request reaches here; upstream failures degrade
		// inside the fallback tiers.
		utils.JSONError(c, http.StatusBadRequest, "search request rejected", err.Error())
		return
	}

	h.Logger.Info("search completed",
		zap.String("origin", result.Request.Origin),
		zap.String("destination", result.Request.Destination),
		zap.Int("packages", len(result.Packages)))
	c.JSON(http.StatusOK, result)
}

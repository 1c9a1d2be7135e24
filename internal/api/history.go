package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/meowsite/recipes-backend/internal/middleware"
	"github.com/meowsite/recipes-backend/internal/service"
	"github.com/meowsite/recipes-backend/internal/types"
)

// HistoryHandler exposes the caller's recently-viewed recipes and search
// history. Both resources are strictly per-user.
type HistoryHandler struct {
	history   service.IHistoryService
	validator middleware.TokenValidator
	log       zerolog.Logger
}

func NewHistoryHandler(history service.IHistoryService, validator middleware.TokenValidator, log zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history:   history,
		validator: validator,
		log:       log.With().Str("handler", "history").Logger(),
	}
}

func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recently-viewed", middleware.RequireAuth(h.validator), h.ListRecentlyViewed)

	search := router.Group("/search-history", middleware.RequireAuth(h.validator))
	{
		search.GET("", h.ListSearchHistory)
		search.POST("", h.AddSearchHistory)
	}
}

func (h *HistoryHandler) ListRecentlyViewed(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	views, err := h.history.ListViews(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list recently viewed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recently viewed"})
		return
	}

	out := make([]RecentlyViewedResponse, 0, len(views))
	for i := range views {
		out = append(out, NewRecentlyViewedResponse(&views[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HistoryHandler) ListSearchHistory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	entries, err := h.history.ListSearches(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list search history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch search history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *HistoryHandler) AddSearchHistory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req types.CreateSearchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.history.AddSearch(c.Request.Context(), userID, req.Query)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to record search")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record search"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

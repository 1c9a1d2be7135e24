package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meowsite/recipes-backend/internal/middleware"
	"github.com/meowsite/recipes-backend/internal/service"
	"github.com/meowsite/recipes-backend/internal/types"
)

// FavoriteHandler exposes the caller's favorite recipes.
type FavoriteHandler struct {
	favorites service.IFavoriteService
	validator middleware.TokenValidator
	log       zerolog.Logger
}

func NewFavoriteHandler(favorites service.IFavoriteService, validator middleware.TokenValidator, log zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		validator: validator,
		log:       log.With().Str("handler", "favorite").Logger(),
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites", middleware.RequireAuth(h.validator))
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:recipe_id", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	favorites, err := h.favorites.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch favorites"})
		return
	}

	out := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, NewFavoriteResponse(&favorites[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req types.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, created, err := h.favorites.AddFavorite(c.Request.Context(), userID, req.RecipeID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to add favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message":  "recipe already in favorites",
			"favorite": NewFavoriteResponse(favorite),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorite": NewFavoriteResponse(favorite)})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipe_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to remove favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	c.Status(http.StatusNoContent)
}

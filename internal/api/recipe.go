package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meowsite/recipes-backend/internal/middleware"
	"github.com/meowsite/recipes-backend/internal/service"
)

// RecipeHandler exposes the recipe resource.
type RecipeHandler struct {
	recipes       service.IRecipeService
	history       service.IHistoryService
	validator     middleware.TokenValidator
	createLimiter *middleware.RateLimiter
	modifyLimiter *middleware.RateLimiter
	log           zerolog.Logger
}

func NewRecipeHandler(
	recipes service.IRecipeService,
	history service.IHistoryService,
	validator middleware.TokenValidator,
	createLimiter, modifyLimiter *middleware.RateLimiter,
	log zerolog.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		recipes:       recipes,
		history:       history,
		validator:     validator,
		createLimiter: createLimiter,
		modifyLimiter: modifyLimiter,
		log:           log.With().Str("handler", "recipe").Logger(),
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", middleware.OptionalAuth(h.validator), h.GetRecipe)
		recipes.POST("", middleware.RequireAuth(h.validator), h.createLimiter.Middleware(), h.CreateRecipe)
		recipes.PATCH("/:id", middleware.RequireAuth(h.validator), h.modifyLimiter.Middleware(), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.RequireAuth(h.validator), h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, NewRecipeResponses(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to get recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}

	// An authenticated view refreshes the caller's recently-viewed entry.
	if userID, ok := middleware.UserID(c); ok {
		if err := h.history.RecordView(c.Request.Context(), userID, recipe.ID); err != nil {
			h.log.Error().Err(err).Str("recipe_id", recipe.ID.String()).Msg("failed to record view")
		}
	}

	c.JSON(http.StatusOK, NewRecipeResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	input, err := parseRecipeForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == nil || *input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), userID, input)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, NewRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	input, err := parseRecipeForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("failed to update recipe")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("failed to delete recipe")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

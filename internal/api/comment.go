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

// CommentHandler exposes recipe comments. Anyone may list; only
// authenticated users may create, and the author is always the caller.
type CommentHandler struct {
	comments  service.ICommentService
	validator middleware.TokenValidator
	log       zerolog.Logger
}

func NewCommentHandler(comments service.ICommentService, validator middleware.TokenValidator, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		comments:  comments,
		validator: validator,
		log:       log.With().Str("handler", "comment").Logger(),
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	{
		comments.GET("", h.ListComments)
		comments.POST("", middleware.RequireAuth(h.validator), h.CreateComment)
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	var recipeID *uuid.UUID
	if raw := c.Query("recipe"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
			return
		}
		recipeID = &id
	}

	comments, err := h.comments.ListComments(c.Request.Context(), recipeID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch comments"})
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.CreateComment(c.Request.Context(), userID, req.RecipeID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(comment))
}

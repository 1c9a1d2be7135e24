package types

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type CreateCommentRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
	Text     string    `json:"text" binding:"required"`
}

type CreateFavoriteRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}

type CreateSearchHistoryRequest struct {
	Query string `json:"query" binding:"required,max=255"`
}

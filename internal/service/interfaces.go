package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, *types.TokenPair, error)
	Login(ctx context.Context, username, password string) (*models.User, *types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, search string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, userID uuid.UUID, input *types.RecipeInput) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, recipeID uuid.UUID, input *types.RecipeInput) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
}

// ICommentService defines the interface for comment operations
type ICommentService interface {
	ListComments(ctx context.Context, recipeID *uuid.UUID) ([]models.Comment, error)
	CreateComment(ctx context.Context, authorID, recipeID uuid.UUID, text string) (*models.Comment, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.Favorite, bool, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
}

// IHistoryService covers recently-viewed recipes and search history
type IHistoryService interface {
	RecordView(ctx context.Context, userID, recipeID uuid.UUID) error
	ListViews(ctx context.Context, userID uuid.UUID) ([]models.RecentlyViewed, error)
	AddSearch(ctx context.Context, userID uuid.UUID, query string) (*models.SearchHistory, error)
	ListSearches(ctx context.Context, userID uuid.UUID) ([]models.SearchHistory, error)
}

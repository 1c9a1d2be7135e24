package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/internal/models"
)

// FavoriteService handles the user/recipe favorite pairs.
type FavoriteService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewFavoriteService(db *gorm.DB, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{
		db:  db,
		log: log.With().Str("service", "favorite").Logger(),
	}
}

// ListFavorites returns the caller's favorites, newest first, with the
// recipes embedded.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Attributes").
		Preload("Recipe.StepImages").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// AddFavorite is idempotent: if the pair already exists the existing row is
// returned with created=false instead of an error. A concurrent duplicate
// insert trips the composite unique index and resolves the same way.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.Favorite, bool, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if existing, err := s.findFavorite(ctx, userID, recipeID); err == nil {
		return existing, false, nil
	}

	favorite := models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		// Lost the race against a concurrent create for the same pair.
		if existing, findErr := s.findFavorite(ctx, userID, recipeID); findErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}

	created, err := s.findFavorite(ctx, userID, recipeID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// RemoveFavorite deletes the caller's favorite for a recipe.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FavoriteService) findFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Attributes").
		Preload("Recipe.StepImages").
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

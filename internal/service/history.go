package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/internal/models"
)

// HistoryService handles per-user recently-viewed recipes and search history.
type HistoryService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHistoryService(db *gorm.DB, log zerolog.Logger) *HistoryService {
	return &HistoryService{
		db:  db,
		log: log.With().Str("service", "history").Logger(),
	}
}

// RecordView refreshes the caller's recently-viewed entry for a recipe.
// Re-viewing deletes the prior row and inserts a fresh one so ordering
// reflects recency, then the history is pruned to the newest entries.
func (s *HistoryService) RecordView(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&models.RecentlyViewed{}).Error; err != nil {
			return err
		}

		view := models.RecentlyViewed{
			UserID:   userID,
			RecipeID: recipeID,
		}
		if err := tx.Create(&view).Error; err != nil {
			return err
		}

		var keep []uuid.UUID
		if err := tx.Model(&models.RecentlyViewed{}).
			Where("user_id = ?", userID).
			Order("viewed_at DESC").
			Limit(models.RecentlyViewedLimit).
			Pluck("id", &keep).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND id NOT IN ?", userID, keep).
			Delete(&models.RecentlyViewed{}).Error
	})
}

// ListViews returns the caller's most recent views, newest first.
func (s *HistoryService) ListViews(ctx context.Context, userID uuid.UUID) ([]models.RecentlyViewed, error) {
	var views []models.RecentlyViewed
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Attributes").
		Preload("Recipe.StepImages").
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(models.RecentlyViewedLimit).
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// AddSearch records a search query for the caller.
func (s *HistoryService) AddSearch(ctx context.Context, userID uuid.UUID, query string) (*models.SearchHistory, error) {
	entry := models.SearchHistory{
		UserID: userID,
		Query:  query,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListSearches returns the caller's newest queries, bounded by
// SearchHistoryLimit.
func (s *HistoryService) ListSearches(ctx context.Context, userID uuid.UUID) ([]models.SearchHistory, error) {
	var entries []models.SearchHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(models.SearchHistoryLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

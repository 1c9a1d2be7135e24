package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/internal/models"
)

// CommentService handles recipe comments.
type CommentService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewCommentService(db *gorm.DB, log zerolog.Logger) *CommentService {
	return &CommentService{
		db:  db,
		log: log.With().Str("service", "comment").Logger(),
	}
}

// ListComments lists comments, optionally restricted to one recipe.
func (s *CommentService) ListComments(ctx context.Context, recipeID *uuid.UUID) ([]models.Comment, error) {
	query := s.db.WithContext(ctx).Preload("Author").Order("created_at")
	if recipeID != nil {
		query = query.Where("recipe_id = ?", *recipeID)
	}

	var comments []models.Comment
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment adds a comment authored by the caller. The author is never
// client-supplied.
func (s *CommentService) CreateComment(ctx context.Context, authorID, recipeID uuid.UUID, text string) (*models.Comment, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		RecipeID: recipeID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("Author").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/storage"
	"github.com/meowsite/recipes-backend/internal/types"
)

// RecipeService handles the recipe lifecycle: listing with search, retrieval,
// and owner-gated create/update/delete including image uploads, attributes and
// the step image gallery.
type RecipeService struct {
	db    *gorm.DB
	store storage.ImageStore
	log   zerolog.Logger
}

func NewRecipeService(db *gorm.DB, store storage.ImageStore, log zerolog.Logger) *RecipeService {
	return &RecipeService{
		db:    db,
		store: store,
		log:   log.With().Str("service", "recipe").Logger(),
	}
}

// ListRecipes returns recipes newest first, optionally filtered by a
// case-insensitive substring match over name, description and ingredients.
func (s *RecipeService) ListRecipes(ctx context.Context, search string) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).
		Preload("Attributes").
		Preload("StepImages", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("User").
		Order("created_at DESC")

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?",
			like, like, like,
		)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves one recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Attributes").
		Preload("StepImages", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("User").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe persists a recipe owned by userID, uploads its images and
// creates one attribute row per supplied pair.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, input *types.RecipeInput) (*models.Recipe, error) {
	owner := userID
	recipe := models.Recipe{
		UserID:      &owner,
		CookingTime: 25,
		Calories:    145,
	}
	input.ApplyTo(&recipe)

	if input.Image != nil {
		url, err := s.uploadImage(ctx, "recipes", input.Image)
		if err != nil {
			return nil, err
		}
		recipe.ImageURL = url
	}

	stepImages, err := s.uploadStepImages(ctx, input.StepImages)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for i := range stepImages {
			stepImages[i].RecipeID = recipe.ID
		}
		if len(stepImages) > 0 {
			if err := tx.Create(&stepImages).Error; err != nil {
				return err
			}
		}
		return createAttributes(tx, recipe.ID, input.Attributes)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("recipe_id", recipe.ID.String()).Str("user_id", userID.String()).Msg("recipe created")
	return s.GetRecipe(ctx, recipe.ID)
}

// UpdateRecipe performs a partial update. Only the owner may update. Supplying
// any step image replaces the whole gallery; attributes are always replaced
// wholesale from the payload.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, recipeID uuid.UUID, input *types.RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.UserID == nil || *recipe.UserID != userID {
		return nil, ErrForbidden
	}

	input.ApplyTo(&recipe)

	if input.Image != nil {
		url, err := s.uploadImage(ctx, "recipes", input.Image)
		if err != nil {
			return nil, err
		}
		recipe.ImageURL = url
	}

	var stepImages []models.RecipeStepImage
	if len(input.StepImages) > 0 {
		var err error
		stepImages, err = s.uploadStepImages(ctx, input.StepImages)
		if err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}

		if len(stepImages) > 0 {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeStepImage{}).Error; err != nil {
				return err
			}
			for i := range stepImages {
				stepImages[i].RecipeID = recipe.ID
			}
			if err := tx.Create(&stepImages).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeAttribute{}).Error; err != nil {
			return err
		}
		return createAttributes(tx, recipe.ID, input.Attributes)
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

// DeleteRecipe removes a recipe and all dependent rows. Only the owner may
// delete.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if recipe.UserID == nil || *recipe.UserID != userID {
		return ErrForbidden
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.Comment{},
			&models.Favorite{},
			&models.RecentlyViewed{},
			&models.RecipeAttribute{},
			&models.RecipeStepImage{},
		} {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&recipe).Error
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("recipe_id", recipeID.String()).Str("user_id", userID.String()).Msg("recipe deleted")
	return nil
}

func (s *RecipeService) uploadImage(ctx context.Context, prefix string, img *types.ImageUpload) (string, error) {
	ext := filepath.Ext(img.Filename)
	if ext == "" {
		ext = ".png"
	}
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	url, err := s.store.Upload(ctx, key, contentType, img.Data)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}

func (s *RecipeService) uploadStepImages(ctx context.Context, uploads []types.ImageUpload) ([]models.RecipeStepImage, error) {
	images := make([]models.RecipeStepImage, 0, len(uploads))
	for i := range uploads {
		url, err := s.uploadImage(ctx, "recipes/steps", &uploads[i])
		if err != nil {
			return nil, err
		}
		images = append(images, models.RecipeStepImage{URL: url, Position: i})
	}
	return images, nil
}

func createAttributes(tx *gorm.DB, recipeID uuid.UUID, pairs []types.AttributePair) error {
	for _, pair := range pairs {
		if pair.Name == "" || pair.Value == "" {
			continue
		}
		attr := models.RecipeAttribute{
			RecipeID: recipeID,
			Name:     pair.Name,
			Value:    pair.Value,
		}
		if err := tx.Create(&attr).Error; err != nil {
			return err
		}
	}
	return nil
}

package database

import (
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/internal/models"
)

// Migrate runs GORM auto-migration for every entity. The same call works for
// Postgres and the SQLite databases the tests use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeAttribute{},
		&models.RecipeStepImage{},
		&models.Comment{},
		&models.Favorite{},
		&models.RecentlyViewed{},
		&models.SearchHistory{},
	)
}

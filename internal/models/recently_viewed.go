package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentlyViewed records that a user opened a recipe. At most one row exists
// per (user, recipe); re-viewing removes the old row and inserts a fresh one
// so ordering reflects recency. Each user keeps at most RecentlyViewedLimit
// entries.
type RecentlyViewed struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewed_user_recipe" json:"-"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewed_user_recipe" json:"-"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	ViewedAt time.Time `gorm:"autoCreateTime" json:"viewed_at"`
}

// RecentlyViewedLimit caps the per-user history of viewed recipes.
const RecentlyViewedLimit = 5

func (v *RecentlyViewed) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

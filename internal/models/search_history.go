package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SearchHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Query     string    `gorm:"size:255;not null" json:"query"`
	CreatedAt time.Time `json:"timestamp"`
}

// SearchHistoryLimit bounds how many entries a listing returns per user.
const SearchHistoryLimit = 20

func (s *SearchHistory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

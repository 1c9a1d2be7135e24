package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringArray stores an ordered list of strings as a JSON column so the same
// model works on both Postgres and SQLite.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
	UserID       *uuid.UUID        `gorm:"type:uuid;index" json:"user_id"`
	User         *User             `gorm:"foreignKey:UserID" json:"-"`
	Name         string            `gorm:"size:200;not null" json:"name"`
	Description  string            `gorm:"type:text" json:"description"`
	Ingredients  StringArray       `gorm:"type:text;not null;default:'[]'" json:"ingredients"`
	Instructions StringArray       `gorm:"type:text;not null;default:'[]'" json:"instructions"`
	ImageURL     string            `gorm:"size:512" json:"image"`
	CookingTime  int               `gorm:"not null;default:25" json:"cooking_time"`
	Calories     int               `gorm:"not null;default:145" json:"calories"`
	Attributes   []RecipeAttribute `gorm:"foreignKey:RecipeID" json:"attributes"`
	StepImages   []RecipeStepImage `gorm:"foreignKey:RecipeID" json:"step_images"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeAttribute is a free-form key/value pair attached to a recipe. The full
// set is replaced whenever the recipe is updated.
type RecipeAttribute struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Value    string    `gorm:"size:255;not null" json:"value"`
}

func (a *RecipeAttribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// RecipeStepImage is one image of the step-by-step gallery. Position preserves
// the order the client supplied the files in.
type RecipeStepImage struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	URL      string    `gorm:"size:512;not null" json:"url"`
	Position int       `gorm:"not null;default:0" json:"position"`
}

func (s *RecipeStepImage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

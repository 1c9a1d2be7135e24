package api

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meowsite/recipes-backend/internal/models"
)

// RecipeResponse is the wire shape of a recipe.
type RecipeResponse struct {
	ID           uuid.UUID           `json:"id"`
	User         string              `json:"user,omitempty"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Ingredients  []string            `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Image        string              `json:"image,omitempty"`
	StepImages   []string            `json:"step_images"`
	CookingTime  int                 `json:"cooking_time"`
	Calories     int                 `json:"calories"`
	CreatedAt    time.Time           `json:"created_at"`
	Attributes   []AttributeResponse `json:"attributes"`
}

type AttributeResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteResponse struct {
	ID      uuid.UUID      `json:"id"`
	Recipe  RecipeResponse `json:"recipe"`
	AddedAt time.Time      `json:"added_at"`
}

type RecentlyViewedResponse struct {
	ID       uuid.UUID      `json:"id"`
	Recipe   RecipeResponse `json:"recipe"`
	ViewedAt time.Time      `json:"viewed_at"`
}

// NewRecipeResponse shapes a recipe for the wire. Image URLs are forced to
// https regardless of how they were stored.
func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        secureURL(r.ImageURL),
		StepImages:   make([]string, 0, len(r.StepImages)),
		CookingTime:  r.CookingTime,
		Calories:     r.Calories,
		CreatedAt:    r.CreatedAt,
		Attributes:   make([]AttributeResponse, 0, len(r.Attributes)),
	}
	if r.Ingredients == nil {
		resp.Ingredients = []string{}
	}
	if r.Instructions == nil {
		resp.Instructions = []string{}
	}
	if r.User != nil {
		resp.User = r.User.Username
	}
	for _, img := range r.StepImages {
		resp.StepImages = append(resp.StepImages, secureURL(img.URL))
	}
	for _, attr := range r.Attributes {
		resp.Attributes = append(resp.Attributes, AttributeResponse{
			ID:    attr.ID,
			Name:  attr.Name,
			Value: attr.Value,
		})
	}
	return resp
}

func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

func NewCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
	if c.Author != nil {
		resp.Author = c.Author.Username
	}
	return resp
}

func NewFavoriteResponse(f *models.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ID:      f.ID,
		AddedAt: f.AddedAt,
	}
	if f.Recipe != nil {
		resp.Recipe = NewRecipeResponse(f.Recipe)
	}
	return resp
}

func NewRecentlyViewedResponse(v *models.RecentlyViewed) RecentlyViewedResponse {
	resp := RecentlyViewedResponse{
		ID:       v.ID,
		ViewedAt: v.ViewedAt,
	}
	if v.Recipe != nil {
		resp.Recipe = NewRecipeResponse(v.Recipe)
	}
	return resp
}

func secureURL(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}

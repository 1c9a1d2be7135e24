package types

import "github.com/meowsite/recipes-backend/internal/models"

// ImageUpload is one file pulled out of a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AttributePair is one name/value attribute from the recipe form. Pairs with
// an empty name or value are skipped when stored.
type AttributePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RecipeInput is the typed shape of the multipart recipe form. Pointer and
// nil-slice fields mean "not supplied", which is what makes partial updates
// an explicit merge instead of a reflective field loop.
type RecipeInput struct {
	Name         *string
	Description  *string
	Ingredients  []string
	Instructions []string
	CookingTime  *int
	Calories     *int
	Image        *ImageUpload
	StepImages   []ImageUpload
	Attributes   []AttributePair
}

// ApplyTo merges the supplied fields into an existing recipe. Image fields are
// handled separately because they go through the image store first.
func (in *RecipeInput) ApplyTo(r *models.Recipe) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Ingredients != nil {
		r.Ingredients = models.StringArray(in.Ingredients)
	}
	if in.Instructions != nil {
		r.Instructions = models.StringArray(in.Instructions)
	}
	if in.CookingTime != nil {
		r.CookingTime = *in.CookingTime
	}
	if in.Calories != nil {
		r.Calories = *in.Calories
	}
}

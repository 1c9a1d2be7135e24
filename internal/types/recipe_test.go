package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/types"
)

func TestApplyToMergesOnlySuppliedFields(t *testing.T) {
	recipe := models.Recipe{
		Name:         "Original",
		Description:  "old",
		Ingredients:  models.StringArray{"salt"},
		Instructions: models.StringArray{"stir"},
		CookingTime:  25,
		Calories:     145,
	}

	name := "Renamed"
	cookingTime := 40
	in := types.RecipeInput{
		Name:        &name,
		CookingTime: &cookingTime,
		Ingredients: []string{"pepper", "salt"},
	}
	in.ApplyTo(&recipe)

	assert.Equal(t, "Renamed", recipe.Name)
	assert.Equal(t, 40, recipe.CookingTime)
	assert.Equal(t, models.StringArray{"pepper", "salt"}, recipe.Ingredients)
	// Unsupplied fields keep their previous values.
	assert.Equal(t, "old", recipe.Description)
	assert.Equal(t, models.StringArray{"stir"}, recipe.Instructions)
	assert.Equal(t, 145, recipe.Calories)
}

func TestApplyToEmptySliceClears(t *testing.T) {
	recipe := models.Recipe{Ingredients: models.StringArray{"salt"}}

	in := types.RecipeInput{Ingredients: []string{}}
	in.ApplyTo(&recipe)

	assert.Empty(t, recipe.Ingredients)
}

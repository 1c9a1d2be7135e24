package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/service"
	"github.com/meowsite/recipes-backend/internal/testhelpers"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := service.NewFavoriteService(db, zerolog.Nop())
	user, _ := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")

	fav, created, err := svc.AddFavorite(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, fav)

	again, created, err := svc.AddFavorite(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, fav.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := service.NewFavoriteService(db, zerolog.Nop())
	user, _ := testhelpers.CreateUser(t, db, "alice")

	_, _, err := svc.AddFavorite(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListFavoritesScopedToUser(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := service.NewFavoriteService(db, zerolog.Nop())
	alice, _ := testhelpers.CreateUser(t, db, "alice")
	bob, _ := testhelpers.CreateUser(t, db, "bob")
	recipe := testhelpers.CreateRecipe(t, db, alice, "Shared")

	_, _, err := svc.AddFavorite(context.Background(), alice.ID, recipe.ID)
	require.NoError(t, err)
	_, _, err = svc.AddFavorite(context.Background(), bob.ID, recipe.ID)
	require.NoError(t, err)

	favs, err := svc.ListFavorites(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.NotNil(t, favs[0].Recipe)
	assert.Equal(t, "Shared", favs[0].Recipe.Name)
}

func TestRemoveFavorite(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := service.NewFavoriteService(db, zerolog.Nop())
	user, _ := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")

	_, _, err := svc.AddFavorite(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFavorite(context.Background(), user.ID, recipe.ID))

	// A second removal has nothing left to delete.
	err = svc.RemoveFavorite(context.Background(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowsite/recipes-backend/internal/testhelpers"
)

func TestAddFavoriteEndpoint(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	user, token := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")

	w := postJSON(t, engine, "/api/v1/favorites", gin.H{"recipe_id": recipe.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A repeat add reports the existing favorite instead of failing.
	w = postJSON(t, engine, "/api/v1/favorites", gin.H{"recipe_id": recipe.ID}, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "recipe already in favorites", body["message"])
	assert.NotNil(t, body["favorite"])

	w = postJSON(t, engine, "/api/v1/favorites", gin.H{"recipe_id": uuid.New()}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFavoritesEndpoint(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	user, token := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")

	w := getJSON(t, engine, "/api/v1/favorites", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, engine, "/api/v1/favorites", gin.H{"recipe_id": recipe.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = getJSON(t, engine, "/api/v1/favorites", token)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	nested, ok := favorites[0]["recipe"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Pie", nested["name"])
}

func TestRemoveFavoriteEndpoint(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	user, token := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")

	w := postJSON(t, engine, "/api/v1/favorites", gin.H{"recipe_id": recipe.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/favorites/"+recipe.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNoContent, w2.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/favorites/"+recipe.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 = httptest.NewRecorder()
	engine.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

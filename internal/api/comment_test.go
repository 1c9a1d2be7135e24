package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/testhelpers"
)

func TestListCommentsAnonymous(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	user, _ := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")
	other := testhelpers.CreateRecipe(t, db, user, "Soup")

	require.NoError(t, db.Create(&models.Comment{RecipeID: recipe.ID, AuthorID: user.ID, Text: "on pie"}).Error)
	require.NoError(t, db.Create(&models.Comment{RecipeID: other.ID, AuthorID: user.ID, Text: "on soup"}).Error)

	w := getJSON(t, engine, "/api/v1/comments?recipe="+recipe.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "on pie", comments[0]["text"])
	assert.Equal(t, "alice", comments[0]["author"])

	w = getJSON(t, engine, "/api/v1/comments?recipe=not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCommentEndpoint(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	user, token := testhelpers.CreateUser(t, db, "alice")
	recipe := testhelpers.CreateRecipe(t, db, user, "Pie")

	w := postJSON(t, engine, "/api/v1/comments", gin.H{
		"recipe_id": recipe.ID,
		"text":      "delicious",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, engine, "/api/v1/comments", gin.H{
		"recipe_id": recipe.ID,
		"text":      "delicious",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "delicious", body["text"])
	assert.Equal(t, "alice", body["author"])
}

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowsite/recipes-backend/internal/testhelpers"
)

func TestSearchHistoryEndpoints(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	_, token := testhelpers.CreateUser(t, db, "alice")

	w := postJSON(t, engine, "/api/v1/search-history", gin.H{"query": "pasta"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, engine, "/api/v1/search-history", gin.H{"query": "pasta"}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "pasta", body["query"])
	assert.NotEmpty(t, body["timestamp"])

	w = getJSON(t, engine, "/api/v1/search-history", token)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "pasta", entries[0]["query"])
}

func TestRecentlyViewedRequiresAuth(t *testing.T) {
	engine, _, _ := testhelpers.NewTestRouter(t)

	w := getJSON(t, engine, "/api/v1/recently-viewed", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

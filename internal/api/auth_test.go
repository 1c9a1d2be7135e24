package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowsite/recipes-backend/internal/testhelpers"
)

func postJSON(t *testing.T, engine *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegisterEndpoint(t *testing.T) {
	engine, _, _ := testhelpers.NewTestRouter(t)

	w := postJSON(t, engine, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password_hash")
}

func TestRegisterDuplicateUsernameEndpoint(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	testhelpers.CreateUser(t, db, "alice")

	w := postJSON(t, engine, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	engine, _, _ := testhelpers.NewTestRouter(t)

	w := postJSON(t, engine, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "pw",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	engine, db, _ := testhelpers.NewTestRouter(t)
	testhelpers.CreateUser(t, db, "alice")

	w := postJSON(t, engine, "/api/v1/auth/login", gin.H{
		"username": "alice",
		"password": "testpassword123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access"])

	w = postJSON(t, engine, "/api/v1/auth/login", gin.H{
		"username": "alice",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshEndpoint(t *testing.T) {
	engine, _, _ := testhelpers.NewTestRouter(t)

	w := postJSON(t, engine, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	refresh := decodeBody(t, w)["refresh"].(string)

	w = postJSON(t, engine, "/api/v1/auth/refresh", gin.H{"refresh": refresh}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])

	w = postJSON(t, engine, "/api/v1/auth/refresh", gin.H{"refresh": "not-a-token"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

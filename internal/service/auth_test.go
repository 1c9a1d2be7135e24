package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/service"
	"github.com/meowsite/recipes-backend/internal/testhelpers"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	user, pair, err := auth.Register(context.Background(), "alice", "a@x.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	_, _, err := auth.Register(context.Background(), "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, _, err = auth.Register(context.Background(), "alice", "other@x.com", "secret123")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	_, _, err := auth.Register(context.Background(), "alice", "shared@x.com", "secret123")
	require.NoError(t, err)

	_, _, err = auth.Register(context.Background(), "bob", "shared@x.com", "secret123")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterAllowsManyUsersWithoutEmail(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	_, _, err := auth.Register(context.Background(), "alice", "", "secret123")
	require.NoError(t, err)
	_, _, err = auth.Register(context.Background(), "bob", "", "secret123")
	require.NoError(t, err)
}

// The unique index is what holds when two registrations race past the
// check-then-insert in Register.
func TestEmailUniqueConstraint(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	email := "dup@example.com"
	first := models.User{Username: "alice", Email: &email, PasswordHash: "x"}
	require.NoError(t, db.Create(&first).Error)

	second := models.User{Username: "bob", Email: &email, PasswordHash: "x"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLogin(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	_, _, err := auth.Register(context.Background(), "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	user, pair, err := auth.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, pair.Access)

	_, _, err = auth.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsRefreshToken(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	_, pair, err := auth.Register(context.Background(), "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	_, err = auth.ValidateToken(pair.Refresh)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefresh(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	auth := testhelpers.NewAuthService(db)

	_, pair, err := auth.Register(context.Background(), "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	newPair, err := auth.Refresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newPair.Access)

	// An access token is not a refresh token.
	_, err = auth.Refresh(context.Background(), pair.Access)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

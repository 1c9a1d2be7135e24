package testhelpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/meowsite/recipes-backend/config"
	"github.com/meowsite/recipes-backend/internal/database"
	"github.com/meowsite/recipes-backend/internal/models"
	"github.com/meowsite/recipes-backend/internal/router"
	"github.com/meowsite/recipes-backend/internal/service"
	"github.com/meowsite/recipes-backend/internal/storage"
)

const TestJWTSecret = "test-secret"

// NewTestDB opens an isolated in-memory SQLite database with the full schema.
// The shared cache keeps every pooled connection on the same database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// NewTestConfig returns a config suitable for wiring the router in tests.
func NewTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:      TestJWTSecret,
		AccessTTL:      time.Hour,
		RefreshTTL:     24 * time.Hour,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// NewTestRouter builds the full route table against an in-memory database,
// an in-memory image store and no Redis.
func NewTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *storage.MemoryStore) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := NewTestDB(t)
	store := storage.NewMemoryStore()
	engine := router.New(NewTestConfig(), db, nil, store, zerolog.Nop())
	return engine, db, store
}

// NewAuthService builds an auth service sharing the test JWT secret.
func NewAuthService(db *gorm.DB) *service.AuthService {
	return service.NewAuthService(db, TestJWTSecret, time.Hour, 24*time.Hour, zerolog.Nop())
}

// CreateUser inserts a user with a bcrypt-hashed password and returns it with
// a valid access token.
func CreateUser(t *testing.T, db *gorm.DB, username string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	email := username + "@example.com"
	user := models.User{
		Username:     username,
		Email:        &email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	_, pair, err := NewAuthService(db).Login(context.Background(), username, "testpassword123")
	if err != nil {
		t.Fatalf("failed to log in test user: %v", err)
	}
	return &user, pair.Access
}

// CreateRecipe inserts a recipe owned by the given user.
func CreateRecipe(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Name:         name,
		Description:  "a test recipe",
		Ingredients:  models.StringArray{"flour", "water"},
		Instructions: models.StringArray{"mix", "bake"},
		CookingTime:  25,
		Calories:     145,
	}
	if owner != nil {
		recipe.UserID = &owner.ID
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return &recipe
}

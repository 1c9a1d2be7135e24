package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/meowsite/recipes-backend/config"
	"github.com/meowsite/recipes-backend/internal/api"
	"github.com/meowsite/recipes-backend/internal/middleware"
	"github.com/meowsite/recipes-backend/internal/service"
	"github.com/meowsite/recipes-backend/internal/storage"
)

// New wires services, handlers and middleware into the route table.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store storage.ImageStore, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL, log)
	recipeService := service.NewRecipeService(db, store, log)
	commentService := service.NewCommentService(db, log)
	favoriteService := service.NewFavoriteService(db, log)
	historyService := service.NewHistoryService(db, log)

	var createLimiter, modifyLimiter *middleware.RateLimiter
	if redisClient != nil {
		createLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		modifyLimiter = middleware.NewRecipeModificationRateLimiter(redisClient)
	}

	v1 := router.Group("/api/v1")
	{
		api.NewHealthHandler(db, redisClient).RegisterRoutes(v1)
		api.NewAuthHandler(authService, log).RegisterRoutes(v1)
		api.NewRecipeHandler(recipeService, historyService, authService, createLimiter, modifyLimiter, log).RegisterRoutes(v1)
		api.NewCommentHandler(commentService, authService, log).RegisterRoutes(v1)
		api.NewFavoriteHandler(favoriteService, authService, log).RegisterRoutes(v1)
		api.NewHistoryHandler(historyService, authService, log).RegisterRoutes(v1)
	}

	return router
}

package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastebase/backend/internal/database"
	"github.com/tastebase/backend/internal/model"
	"github.com/tastebase/backend/internal/service"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db, nil, nil, nil)
	profileService := service.NewProfileService(db, recipeService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, authService, nil).RegisterRoutes(v1)
	NewProfileHandler(profileService, recipeService, authService).RegisterRoutes(v1)

	return router, db, authService
}

// createTestUserAndToken registers a user directly and returns the model
// plus a valid bearer token.
func createTestUserAndToken(t *testing.T, db *gorm.DB, authService *service.AuthService, username string) (*model.User, string) {
	t.Helper()
	token, err := authService.Register(context.Background(), username, username+"@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	var user model.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("failed to load %s: %v", username, err)
	}
	return &user, token
}

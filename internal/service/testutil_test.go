package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastebase/backend/internal/database"
	"github.com/tastebase/backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func validRecipe(authorID uuid.UUID) *model.Recipe {
	return &model.Recipe{
		Title:            "Shakshuka",
		Description:      "Eggs poached in a spiced tomato sauce.",
		Ingredients:      []string{"eggs", "tomatoes", "peppers", "cumin"},
		PreparationSteps: []string{"Simmer the sauce.", "Poach the eggs in it."},
		CookingTime:      30,
		Calories:         400,
		Difficulty:       model.DifficultyEasy,
		Cuisine:          "Middle Eastern",
		Diet:             "Vegetarian",
		AuthorID:         authorID,
	}
}

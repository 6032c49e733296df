package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tastebase/backend/internal/model"
)

// IRecipeService defines the interface for recipe catalog operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	ListRecipes(ctx context.Context, page, limit int) (*RecipePage, error)
	SearchRecipes(ctx context.Context, filter SearchFilter) ([]RecipeSummary, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Recipe, error)
	RateRecipe(ctx context.Context, recipeID, userID uuid.UUID, rating int) (*model.Recipe, error)
	FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]RecipeSummary, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tastebase/backend/internal/model"
)

// FavoriteRecipe adds recipeID to the user's favorites. The existence
// check and the insert run in one transaction; the conditional insert on
// the (user, recipe) unique index makes the membership check atomic, so
// the set can never hold duplicates. A repeat add is a hard
// ErrAlreadyFavorited, mirroring the duplicate-rating policy.
func (s *RecipeService) FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
			return storageError(err)
		}
		if count == 0 {
			return notFound("recipe " + recipeID.String())
		}

		fav := model.RecipeFavorite{UserID: userID, RecipeID: recipeID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
		if res.Error != nil {
			return storageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyFavorited
		}
		return nil
	})
}

// UnfavoriteRecipe removes recipeID from the user's favorites. Removing
// a recipe that is not currently a member fails with ErrNotFound.
func (s *RecipeService) UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.RecipeFavorite{})
	if res.Error != nil {
		return storageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("favorite " + recipeID.String())
	}
	return nil
}

// GetFavoriteRecipes returns summaries of the user's favorites in the
// order they were favorited.
func (s *RecipeService) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]RecipeSummary, error) {
	summaries := []RecipeSummary{}
	err := summaryQuery(s.db.WithContext(ctx)).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at, recipe_favorites.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, storageError(err)
	}
	s.resolveSummaryImages(summaries)
	return summaries, nil
}

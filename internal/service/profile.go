package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastebase/backend/internal/model"
)

// Profile is the profile view: account fields minus credentials, plus
// summaries of the recipes the user published and favorited.
type Profile struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Recipes   []RecipeSummary `json:"recipes"`
	Favorites []RecipeSummary `json:"favorites"`
}

// ProfileService assembles user profile views.
type ProfileService struct {
	db      *gorm.DB
	recipes *RecipeService
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB, recipes *RecipeService) *ProfileService {
	return &ProfileService{
		db:      db,
		recipes: recipes,
	}
}

// GetProfile returns the profile view for userID.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user " + userID.String())
		}
		return nil, storageError(err)
	}

	authored := []RecipeSummary{}
	err := summaryQuery(s.db.WithContext(ctx)).
		Where("recipes.author_id = ?", userID).
		Order("recipes.created_at, recipes.id").
		Scan(&authored).Error
	if err != nil {
		return nil, storageError(err)
	}
	s.recipes.resolveSummaryImages(authored)

	favorites, err := s.recipes.GetFavoriteRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Recipes:   authored,
		Favorites: favorites,
	}, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tastebase/backend/internal/model"
)

const recipeCacheTTL = time.Hour

// MediaValidator checks that an image reference handed over by the upload
// layer is acceptable before it is stored on a recipe, and resolves
// stored references to the URLs served to clients.
type MediaValidator interface {
	ValidateReference(ctx context.Context, ref string) error
	PublicURL(ref string) string
}

// RecipeSummary is the reduced projection used by list and search
// results. Ingredients and preparation steps are withheld from list
// views; the single-recipe fetch returns the full entity.
type RecipeSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Image         string    `json:"image"`
	AverageRating float64   `json:"average_rating"`
	CookingTime   int       `json:"cooking_time"`
	Calories      float64   `json:"calories"`
	Difficulty    string    `json:"difficulty"`
	Author        string    `json:"author"`
}

// RecipePage is one page of recipe summaries plus paging metadata.
type RecipePage struct {
	Recipes     []RecipeSummary `json:"recipes"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// RecipeService handles the recipe catalog: publishing, listing, search,
// rating and favorites. The cache client and media validator are
// optional; a nil cache disables caching and a nil validator accepts any
// reference.
type RecipeService struct {
	db     *gorm.DB
	cache  *redis.Client
	media  MediaValidator
	logger *logrus.Logger
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, cache *redis.Client, media MediaValidator, logger *logrus.Logger) *RecipeService {
	if logger == nil {
		logger = logrus.New()
	}
	return &RecipeService{
		db:     db,
		cache:  cache,
		media:  media,
		logger: logger,
	}
}

// CreateRecipe publishes a new recipe for recipe.AuthorID. The author and
// id are immutable afterwards; the authored-recipes relation is the
// recipes.author_id back-reference, so publishing appends to it exactly
// once by construction.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}
	if s.media != nil && recipe.Image != "" {
		if err := s.media.ValidateReference(ctx, recipe.Image); err != nil {
			return nil, fmt.Errorf("%w: image: %v", ErrInvalidInput, err)
		}
	}

	recipe.AverageRating = 0
	recipe.Ratings = nil
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, storageError(err)
	}
	recipe.Image = s.resolveImage(recipe.Image)
	return recipe, nil
}

func validateRecipe(recipe *model.Recipe) error {
	switch {
	case recipe.AuthorID == uuid.Nil:
		return invalidInput("author is required")
	case strings.TrimSpace(recipe.Title) == "":
		return invalidInput("title is required")
	case strings.TrimSpace(recipe.Description) == "":
		return invalidInput("description is required")
	case len(recipe.Ingredients) == 0:
		return invalidInput("at least one ingredient is required")
	case len(recipe.PreparationSteps) == 0:
		return invalidInput("at least one preparation step is required")
	case recipe.CookingTime <= 0:
		return invalidInput("cooking time must be a positive number of minutes")
	case recipe.Calories < 0:
		return invalidInput("calories must not be negative")
	case !model.ValidDifficulty(recipe.Difficulty):
		return invalidInput("difficulty must be Easy, Medium or Hard")
	}
	return nil
}

// GetRecipe retrieves a single recipe with its full detail, including
// ratings in submission order.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, recipeCacheKey(id)).Bytes(); err == nil {
			var cached model.Recipe
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	recipe, err := s.loadRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(recipe); err == nil {
			if err := s.cache.Set(ctx, recipeCacheKey(id), data, recipeCacheTTL).Err(); err != nil {
				s.logger.WithError(err).Warn("failed to cache recipe")
			}
		}
	}
	return recipe, nil
}

func (s *RecipeService) loadRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ratings.id")
		}).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("recipe " + id.String())
		}
		return nil, storageError(err)
	}
	recipe.Image = s.resolveImage(recipe.Image)
	return &recipe, nil
}

func (s *RecipeService) resolveImage(ref string) string {
	if s.media == nil {
		return ref
	}
	return s.media.PublicURL(ref)
}

func (s *RecipeService) resolveSummaryImages(summaries []RecipeSummary) {
	if s.media == nil {
		return
	}
	for i := range summaries {
		summaries[i].Image = s.media.PublicURL(summaries[i].Image)
	}
}

// ListRecipes returns one page of recipe summaries in creation order.
// page and limit default to 1 and 10 and are coerced to positive values.
func (s *RecipeService) ListRecipes(ctx context.Context, page, limit int) (*RecipePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return nil, storageError(err)
	}

	summaries := []RecipeSummary{}
	err := summaryQuery(s.db.WithContext(ctx)).
		Order("recipes.created_at, recipes.id").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, storageError(err)
	}
	s.resolveSummaryImages(summaries)

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &RecipePage{
		Recipes:     summaries,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// SearchRecipes returns summaries of the recipes matching filter. Result
// order is not guaranteed.
func (s *RecipeService) SearchRecipes(ctx context.Context, filter SearchFilter) ([]RecipeSummary, error) {
	summaries := []RecipeSummary{}
	if err := filter.Apply(summaryQuery(s.db.WithContext(ctx))).Scan(&summaries).Error; err != nil {
		return nil, storageError(err)
	}
	s.resolveSummaryImages(summaries)
	return summaries, nil
}

// ListByAuthor returns all recipes published by the given user, oldest
// first. An unknown author yields an empty slice, not an error.
func (s *RecipeService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at, id").
		Find(&recipes).Error
	if err != nil {
		return nil, storageError(err)
	}
	for i := range recipes {
		recipes[i].Image = s.resolveImage(recipes[i].Image)
	}
	return recipes, nil
}

// RateRecipe records one user's rating and recomputes the average. The
// duplicate check, the append and the recompute run in a single store
// transaction: the conditional insert rides on the (recipe, user) unique
// index, so two concurrent submissions for the same pair cannot both
// pass. A repeat submission is a hard ErrDuplicateRating, never a silent
// no-op.
func (s *RecipeService) RateRecipe(ctx context.Context, recipeID, userID uuid.UUID, rating int) (*model.Recipe, error) {
	if rating < 1 || rating > 5 {
		return nil, invalidInput("rating must be an integer between 1 and 5")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the recipe row first: the AVG below runs on a statement
		// snapshot, so concurrent submissions must serialize before the
		// insert or a blocked writer would recompute from stale rows.
		if err := lockRecipeRow(tx, recipeID); err != nil {
			return err
		}

		entry := model.RecipeRating{RecipeID: recipeID, UserID: userID, Rating: rating}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
		if res.Error != nil {
			return storageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrDuplicateRating
		}

		// Derived value: full-precision mean over all rating rows,
		// recomputed inside the same transaction as the append.
		err := tx.Model(&model.Recipe{}).Where("id = ?", recipeID).
			Update("average_rating",
				gorm.Expr("(SELECT AVG(rating) FROM recipe_ratings WHERE recipe_id = ?)", recipeID)).Error
		if err != nil {
			return storageError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, recipeID)
	return s.loadRecipe(ctx, recipeID)
}

// lockRecipeRow takes a row lock on the recipe for the duration of the
// surrounding transaction. SQLite has a single writer and rejects the
// locking clause, so the plain read suffices there.
func lockRecipeRow(tx *gorm.DB, recipeID uuid.UUID) error {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var recipe model.Recipe
	if err := query.First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("recipe " + recipeID.String())
		}
		return storageError(err)
	}
	return nil
}

func (s *RecipeService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, recipeCacheKey(id)).Err(); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate recipe cache")
	}
}

func recipeCacheKey(id uuid.UUID) string {
	return "recipe:" + id.String()
}

// summaryQuery selects the summary projection with the author's username
// joined in.
func summaryQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Recipe{}).
		Select("recipes.id, recipes.title, recipes.image, recipes.average_rating, recipes.cooking_time, recipes.calories, recipes.difficulty, users.username AS author").
		Joins("JOIN users ON users.id = recipes.author_id")
}

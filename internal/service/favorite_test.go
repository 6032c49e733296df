package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, nil, nil, nil)
	author := newTestUser(t, db, "chef")
	alice := newTestUser(t, db, "alice")

	recipe, err := svc.CreateRecipe(context.Background(), validRecipe(author.ID))
	require.NoError(t, err)

	require.NoError(t, svc.FavoriteRecipe(context.Background(), alice.ID, recipe.ID))

	favorites, err := svc.GetFavoriteRecipes(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, recipe.ID, favorites[0].ID)
	assert.Equal(t, "chef", favorites[0].Author)
}

func TestFavoriteRecipeDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, nil, nil, nil)
	author := newTestUser(t, db, "chef")
	alice := newTestUser(t, db, "alice")

	recipe, err := svc.CreateRecipe(context.Background(), validRecipe(author.ID))
	require.NoError(t, err)

	require.NoError(t, svc.FavoriteRecipe(context.Background(), alice.ID, recipe.ID))

	// repeat add is a reported error, not a silent no-op
	err = svc.FavoriteRecipe(context.Background(), alice.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	favorites, err := svc.GetFavoriteRecipes(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteRecipeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, nil, nil, nil)
	alice := newTestUser(t, db, "alice")

	err := svc.FavoriteRecipe(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfavoriteRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, nil, nil, nil)
	author := newTestUser(t, db, "chef")
	alice := newTestUser(t, db, "alice")

	recipe, err := svc.CreateRecipe(context.Background(), validRecipe(author.ID))
	require.NoError(t, err)

	require.NoError(t, svc.FavoriteRecipe(context.Background(), alice.ID, recipe.ID))
	require.NoError(t, svc.UnfavoriteRecipe(context.Background(), alice.ID, recipe.ID))

	favorites, err := svc.GetFavoriteRecipes(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// removing again fails: the pair is no longer a member
	err = svc.UnfavoriteRecipe(context.Background(), alice.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfavoriteNeverFavorited(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, nil, nil, nil)
	author := newTestUser(t, db, "chef")
	alice := newTestUser(t, db, "alice")

	recipe, err := svc.CreateRecipe(context.Background(), validRecipe(author.ID))
	require.NoError(t, err)

	err = svc.UnfavoriteRecipe(context.Background(), alice.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoritesAreIndependentPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, nil, nil, nil)
	author := newTestUser(t, db, "chef")
	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	recipe, err := svc.CreateRecipe(context.Background(), validRecipe(author.ID))
	require.NoError(t, err)

	require.NoError(t, svc.FavoriteRecipe(context.Background(), alice.ID, recipe.ID))
	require.NoError(t, svc.FavoriteRecipe(context.Background(), bob.ID, recipe.ID))
	require.NoError(t, svc.UnfavoriteRecipe(context.Background(), alice.ID, recipe.ID))

	bobFavorites, err := svc.GetFavoriteRecipes(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobFavorites, 1)
}

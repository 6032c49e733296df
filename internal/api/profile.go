package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebase/backend/internal/middleware"
	"github.com/tastebase/backend/internal/service"
)

// ProfileHandler exposes the profile view and the favorites endpoints.
type ProfileHandler struct {
	profiles service.IProfileService
	recipes  service.IRecipeService
	auth     middleware.TokenValidator
}

func NewProfileHandler(profiles service.IProfileService, recipes service.IRecipeService, auth middleware.TokenValidator) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		recipes:  recipes,
		auth:     auth,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users", middleware.AuthMiddleware(h.auth))
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/favorites/add/:id", h.AddFavorite)
		users.PUT("/favorites/remove/:id", h.RemoveFavorite)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) AddFavorite(c *gin.Context) {
	userID, recipeID, ok := h.favoriteArgs(c)
	if !ok {
		return
	}

	if err := h.recipes.FavoriteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe added to favorites"})
}

func (h *ProfileHandler) RemoveFavorite(c *gin.Context) {
	userID, recipeID, ok := h.favoriteArgs(c)
	if !ok {
		return
	}

	if err := h.recipes.UnfavoriteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from favorites"})
}

func (h *ProfileHandler) favoriteArgs(c *gin.Context) (userID, recipeID uuid.UUID, ok bool) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, uuid.Nil, false
	}
	userID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, recipeID, true
}

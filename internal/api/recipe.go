package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebase/backend/internal/middleware"
	"github.com/tastebase/backend/internal/model"
	"github.com/tastebase/backend/internal/service"
)

// RecipeHandler exposes the recipe catalog over HTTP. It only parses
// requests and maps errors; all catalog semantics live in the service.
type RecipeHandler struct {
	recipes service.IRecipeService
	auth    middleware.TokenValidator
	limiter *middleware.RateLimiter
}

func NewRecipeHandler(recipes service.IRecipeService, auth middleware.TokenValidator, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		auth:    auth,
		limiter: limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/user/:id", h.ListByAuthor)
		recipes.GET("/:id", h.GetRecipe)

		authed := recipes.Group("", middleware.AuthMiddleware(h.auth))
		if h.limiter != nil {
			authed.Use(h.limiter.RateLimitMiddleware())
		}
		authed.POST("", h.PublishRecipe)
		authed.POST("/:id/rate", h.RateRecipe)
	}
}

func (h *RecipeHandler) PublishRecipe(c *gin.Context) {
	var req PublishRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe := &model.Recipe{
		Title:            req.Title,
		Description:      req.Description,
		Image:            req.Image,
		Ingredients:      req.Ingredients,
		PreparationSteps: req.PreparationSteps,
		CookingTime:      req.CookingTime,
		Calories:         req.Calories,
		Difficulty:       req.Difficulty,
		Cuisine:          req.Cuisine,
		Diet:             req.Diet,
		AuthorID:         userID,
	}

	created, err := h.recipes.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.recipes.ListRecipes(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var filter service.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.recipes.SearchRecipes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

func (h *RecipeHandler) ListByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	recipes, err := h.recipes.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe, err := h.recipes.RateRecipe(c.Request.Context(), recipeID, userID, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

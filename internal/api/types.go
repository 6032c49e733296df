package api

// PublishRecipeRequest is the payload for publishing a recipe. The image
// field carries a reference produced by the upload layer, never file
// contents.
type PublishRecipeRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Image            string   `json:"image"`
	Ingredients      []string `json:"ingredients" binding:"required"`
	PreparationSteps []string `json:"preparation_steps" binding:"required"`
	CookingTime      int      `json:"cooking_time" binding:"required"`
	Calories         float64  `json:"calories"`
	Difficulty       string   `json:"difficulty" binding:"required"`
	Cuisine          string   `json:"cuisine"`
	Diet             string   `json:"diet"`
}

// RateRecipeRequest is the payload for rating a recipe.
type RateRecipeRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

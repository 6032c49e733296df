package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/database"
	"github.com/tastebase/backend/internal/model"
	"github.com/tastebase/backend/internal/service"
)

type seedRecipe struct {
	title       string
	description string
	ingredients []string
	steps       []string
	cookingTime int
	calories    float64
	difficulty  string
	cuisine     string
	diet        string
}

var seedRecipes = []seedRecipe{
	{
		title:       "Spaghetti alla Puttanesca",
		description: "A punchy Neapolitan pasta with olives, capers and anchovies.",
		ingredients: []string{"spaghetti", "tomatoes", "black olives", "capers", "anchovies", "garlic", "olive oil"},
		steps:       []string{"Cook the spaghetti until al dente.", "Simmer the sauce with olives and capers.", "Toss and serve."},
		cookingTime: 25,
		calories:    540,
		difficulty:  model.DifficultyEasy,
		cuisine:     "Italian",
		diet:        "Pescatarian",
	},
	{
		title:       "Chana Masala",
		description: "Chickpeas stewed in a spiced tomato and onion gravy.",
		ingredients: []string{"chickpeas", "tomatoes", "onion", "ginger", "garam masala", "cumin"},
		steps:       []string{"Fry the aromatics.", "Add spices and tomatoes.", "Simmer the chickpeas until thick."},
		cookingTime: 40,
		calories:    420,
		difficulty:  model.DifficultyMedium,
		cuisine:     "Indian",
		diet:        "Vegan",
	},
	{
		title:       "Beef Bourguignon",
		description: "Slow-braised beef in red wine with pearl onions and mushrooms.",
		ingredients: []string{"beef chuck", "red wine", "pearl onions", "mushrooms", "carrots", "bacon", "thyme"},
		steps:       []string{"Sear the beef in batches.", "Deglaze with wine and add stock.", "Braise for three hours.", "Finish with onions and mushrooms."},
		cookingTime: 210,
		calories:    680,
		difficulty:  model.DifficultyHard,
		cuisine:     "French",
		diet:        "Omnivore",
	},
	{
		title:       "Miso Ramen",
		description: "Rich miso broth with noodles, soft egg and spring onions.",
		ingredients: []string{"ramen noodles", "miso paste", "chicken stock", "egg", "spring onions", "nori"},
		steps:       []string{"Warm the broth and whisk in miso.", "Cook the noodles.", "Assemble the bowls."},
		cookingTime: 35,
		calories:    510,
		difficulty:  model.DifficultyMedium,
		cuisine:     "Japanese",
		diet:        "Omnivore",
	},
	{
		title:       "Greek Salad",
		description: "Tomatoes, cucumber and feta with oregano and olive oil.",
		ingredients: []string{"tomatoes", "cucumber", "feta", "red onion", "kalamata olives", "oregano", "olive oil"},
		steps:       []string{"Chop the vegetables.", "Dress with oil and oregano.", "Top with feta."},
		cookingTime: 15,
		calories:    320,
		difficulty:  model.DifficultyEasy,
		cuisine:     "Greek",
		diet:        "Vegetarian",
	},
}

func main() {
	logger := logrus.New()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.WithError(err).Fatal("failed to run migrations")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash demo password")
	}
	author := model.User{
		Username:     "demo-chef",
		Email:        "demo-chef@example.com",
		PasswordHash: string(hash),
	}
	if err := db.Where("email = ?", author.Email).FirstOrCreate(&author).Error; err != nil {
		logger.WithError(err).Fatal("failed to create demo user")
	}

	ctx := context.Background()
	recipes := service.NewRecipeService(db, nil, nil, logger)
	seeded := 0
	for _, r := range seedRecipes {
		var count int64
		if err := db.Model(&model.Recipe{}).Where("title = ? AND author_id = ?", r.title, author.ID).Count(&count).Error; err != nil {
			logger.WithError(err).Fatal("failed to check existing recipes")
		}
		if count > 0 {
			continue
		}
		_, err := recipes.CreateRecipe(ctx, &model.Recipe{
			Title:            r.title,
			Description:      r.description,
			Ingredients:      r.ingredients,
			PreparationSteps: r.steps,
			CookingTime:      r.cookingTime,
			Calories:         r.calories,
			Difficulty:       r.difficulty,
			Cuisine:          r.cuisine,
			Diet:             r.diet,
			AuthorID:         author.ID,
		})
		if err != nil {
			logger.WithError(err).WithField("title", r.title).Fatal("failed to seed recipe")
		}
		seeded++
	}

	logger.WithField("count", seeded).Info("seeding complete")
}

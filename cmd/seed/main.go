// Seeds a demo user and a handful of recipes for local development.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/meowsite/recipes-backend/config"
	"github.com/meowsite/recipes-backend/internal/database"
	"github.com/meowsite/recipes-backend/internal/models"
)

var seedRecipes = []models.Recipe{
	{
		Name:        "Classic Pancakes",
		Description: "Fluffy breakfast pancakes with maple syrup",
		Ingredients: models.StringArray{"2 cups flour", "2 eggs", "1.5 cups milk", "2 tbsp sugar", "1 tbsp baking powder"},
		Instructions: models.StringArray{
			"Whisk the dry ingredients together",
			"Beat in the eggs and milk until smooth",
			"Cook on a buttered griddle until golden on both sides",
		},
		CookingTime: 20,
		Calories:    350,
	},
	{
		Name:        "Chocolate Chip Cookies",
		Description: "Chewy cookies loaded with dark chocolate",
		Ingredients: models.StringArray{"250g flour", "170g butter", "200g chocolate chips", "1 egg", "100g brown sugar"},
		Instructions: models.StringArray{
			"Cream the butter and sugar",
			"Mix in the egg, then the flour",
			"Fold in the chocolate chips and bake at 180C for 12 minutes",
		},
		CookingTime: 30,
		Calories:    480,
	},
	{
		Name:        "Tomato Basil Soup",
		Description: "Silky roasted tomato soup finished with fresh basil",
		Ingredients: models.StringArray{"1kg tomatoes", "1 onion", "3 cloves garlic", "fresh basil", "500ml vegetable stock"},
		Instructions: models.StringArray{
			"Roast the tomatoes, onion and garlic",
			"Simmer with the stock for 15 minutes",
			"Blend until smooth and stir in the basil",
		},
		CookingTime: 45,
		Calories:    180,
	},
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	email := "demo@example.com"
	user := models.User{
		Username:     "demo",
		Email:        &email,
		PasswordHash: string(hashed),
	}
	if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create demo user")
	}

	for i := range seedRecipes {
		recipe := seedRecipes[i]
		recipe.UserID = &user.ID
		if err := db.Where("name = ? AND user_id = ?", recipe.Name, user.ID).FirstOrCreate(&recipe).Error; err != nil {
			log.Fatal().Err(err).Str("recipe", recipe.Name).Msg("failed to seed recipe")
		}
	}

	log.Info().Int("recipes", len(seedRecipes)).Msg("seed complete")
}

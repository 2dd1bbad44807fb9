package routes

import (
	"Bowl-Builder-Backend/internal/api/handlers"
	"Bowl-Builder-Backend/internal/middleware"
	"Bowl-Builder-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	BowlHandler       handlers.BowlHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ingredients()
	c.Bowls()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/logout", c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	ingredients.Get("", c.IngredientHandler.GetCatalog)
	ingredients.Patch("/nutrition", c.IngredientHandler.UpdateNutrition)
	ingredients.Post("/:id/image", c.IngredientHandler.UploadIngredientImage)
}

func (c *Config) Bowls() {
	bowls := c.App.Group("/api/v1/bowls", c.Middleware.AuthMiddleware(c.JWTService))

	bowls.Get("/current", c.BowlHandler.GetCurrentBowl)
	bowls.Get("/saved", c.BowlHandler.GetSavedBowls)
	bowls.Post("/reset", c.BowlHandler.ResetBowl)

	bowls.Post("", c.BowlHandler.CreateBowl)
	bowls.Get("/:id", c.BowlHandler.GetBowl)
	bowls.Patch("/:id/name", c.BowlHandler.RenameBowl)
	bowls.Post("/:id/save", c.BowlHandler.SaveBowl)
	bowls.Delete("/:id", c.BowlHandler.DeleteBowl)

	bowls.Post("/:id/ingredients", c.BowlHandler.AddIngredient)
	bowls.Delete("/:id/ingredients/:ingredientID", c.BowlHandler.RemoveIngredient)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/kathirfood/menu_backend/config"
	"github.com/kathirfood/menu_backend/middleware"
	"github.com/kathirfood/menu_backend/repositories"
	"github.com/kathirfood/menu_backend/routes"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.LoadConfig()

	// Connect to database
	client := config.ConnectDB()

	// Connect to Redis (optional; caching degrades gracefully)
	cache := config.ConnectRedis()
	defer config.CloseRedis()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeaders())

	// Initialize the auth gate and repository
	authGate := middleware.NewAuthGate(cfg.Auth)
	menuRepo := repositories.NewMenuRepository(client, cache)

	// Register routes
	routes.RegisterHealthRoutes(e, client)
	routes.RegisterAuthRoutes(e, authGate)
	routes.RegisterCategoryRoutes(e)
	routes.RegisterMenuRoutes(e, menuRepo, authGate)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/controllers"
	"github.com/kathirfood/menu_backend/middleware"
	"github.com/kathirfood/menu_backend/repositories"
)

// RegisterMenuRoutes sets up all menu item routes. The split between
// the public group and the token-guarded group is the authorization
// policy table: reads are anonymous, every mutation requires a valid
// bearer token.
func RegisterMenuRoutes(e *echo.Echo, repo *repositories.MenuRepository, gate *middleware.AuthGate) {
	menuController := controllers.NewMenuController(repo)

	// Public read routes (no auth required)
	menu := e.Group("/api/menu")
	menu.GET("", menuController.GetAllMenuItems)
	menu.GET("/search", menuController.SearchMenuItems)
	menu.GET("/export", menuController.ExportMenuItems)
	menu.GET("/category/:category", menuController.GetMenuItemsByCategory)
	menu.GET("/:id", menuController.GetMenuItem)

	// Protected mutation routes
	protected := e.Group("/api/menu")
	protected.Use(gate.RequireToken())
	protected.POST("", menuController.CreateMenuItem)
	protected.PUT("/:id", menuController.UpdateMenuItem)
	protected.DELETE("/:id", menuController.DeleteMenuItem)
}

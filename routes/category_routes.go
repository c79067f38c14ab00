package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/controllers"
)

// RegisterCategoryRoutes sets up the category registry route. The list
// is fixed, so there are no mutation routes.
func RegisterCategoryRoutes(e *echo.Echo) {
	categoryController := controllers.NewCategoryController()

	e.GET("/api/categories", categoryController.GetAllCategories)
}

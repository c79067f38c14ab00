package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/models"
)

// CategoryController serves the fixed category registry.
type CategoryController struct{}

func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// GetAllCategories handles GET /api/categories. The payload is the
// registry itself; there is no per-request state.
func (cc *CategoryController) GetAllCategories(c echo.Context) error {
	categories := models.Categories()
	count := len(categories)
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Count:   &count,
		Data:    categories,
	})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/models"
	"github.com/kathirfood/menu_backend/repositories"
	"github.com/kathirfood/menu_backend/services"
	"github.com/kathirfood/menu_backend/utils"
)

// MenuController orchestrates the catalog operations: it feeds store
// reads through the query engine for the search and export views and
// translates store failures into the uniform response envelope. Auth is
// enforced by route middleware before any of the mutating handlers run.
type MenuController struct {
	repo *repositories.MenuRepository
}

// NewMenuController creates a new menu controller
func NewMenuController(repo *repositories.MenuRepository) *MenuController {
	return &MenuController{repo: repo}
}

// GetAllMenuItems handles GET /api/menu: the unfiltered catalog,
// newest-first.
func (mc *MenuController) GetAllMenuItems(c echo.Context) error {
	items, err := mc.repo.FindAll(c.Request().Context())
	if err != nil {
		return mc.writeError(c, err)
	}

	count := len(items)
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Count:   &count,
		Data:    items,
	})
}

// SearchMenuItems handles GET /api/menu/search: one query-engine view
// over the catalog, described entirely by query parameters.
func (mc *MenuController) SearchMenuItems(c echo.Context) error {
	items, err := mc.repo.FindAll(c.Request().Context())
	if err != nil {
		return mc.writeError(c, err)
	}

	spec := querySpecFromRequest(c)
	result := services.ApplyQuery(items, spec)

	// Clamp the page into [1, totalPages]; the engine itself slices
	// blindly and would return an empty page past the end.
	if !spec.GroupByCategory && spec.Page > result.TotalPages {
		spec.Page = result.TotalPages
		result = services.ApplyQuery(items, spec)
	}

	count := result.TotalCount
	if spec.GroupByCategory {
		return c.JSON(http.StatusOK, models.Response{
			Success:    true,
			Count:      &count,
			TotalPages: result.TotalPages,
			Data:       result.Groups,
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Count:      &count,
		TotalPages: result.TotalPages,
		Data:       result.Items,
	})
}

// ExportMenuItems handles GET /api/menu/export: the filtered+sorted set
// as CSV, never paginated.
func (mc *MenuController) ExportMenuItems(c echo.Context) error {
	items, err := mc.repo.FindAll(c.Request().Context())
	if err != nil {
		return mc.writeError(c, err)
	}

	filtered := services.FilterSort(items, querySpecFromRequest(c))
	payload, err := utils.MenuItemsCSV(filtered)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to export menu items",
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="menu_export.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", payload)
}

// GetMenuItem handles GET /api/menu/:id.
func (mc *MenuController) GetMenuItem(c echo.Context) error {
	item, err := mc.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mc.writeError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    item,
	})
}

// GetMenuItemsByCategory handles GET /api/menu/category/:category.
// Unknown categories yield an empty list, not an error; the category
// invariant only binds writes.
func (mc *MenuController) GetMenuItemsByCategory(c echo.Context) error {
	category := c.Param("category")
	items, err := mc.repo.FindByCategory(c.Request().Context(), category)
	if err != nil {
		return mc.writeError(c, err)
	}

	count := len(items)
	return c.JSON(http.StatusOK, models.Response{
		Success:  true,
		Category: category,
		Count:    &count,
		Data:     items,
	})
}

// CreateMenuItem handles POST /api/menu (protected).
func (mc *MenuController) CreateMenuItem(c echo.Context) error {
	var draft models.MenuItemDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed: " + err.Error(),
		})
	}

	item, err := mc.repo.Insert(c.Request().Context(), &draft)
	if err != nil {
		return mc.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Data:    item,
		Message: "Menu item created successfully",
	})
}

// UpdateMenuItem handles PUT /api/menu/:id (protected). Updates are
// full-document replaces: the body must be a complete draft.
func (mc *MenuController) UpdateMenuItem(c echo.Context) error {
	var draft models.MenuItemDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed: " + err.Error(),
		})
	}

	item, err := mc.repo.Replace(c.Request().Context(), c.Param("id"), &draft)
	if err != nil {
		return mc.writeError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    item,
		Message: "Menu item updated successfully",
	})
}

// DeleteMenuItem handles DELETE /api/menu/:id (protected).
func (mc *MenuController) DeleteMenuItem(c echo.Context) error {
	if err := mc.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mc.writeError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item deleted successfully",
	})
}

// writeError maps store failures onto the reference status codes. Only
// validation messages carry detail; storage failures stay generic.
func (mc *MenuController) writeError(c echo.Context, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: validationErr.Error(),
		})
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Menu item not found",
		})
	}
	return c.JSON(http.StatusInternalServerError, models.Response{
		Success: false,
		Message: "Storage is temporarily unavailable",
	})
}

// querySpecFromRequest builds a QuerySpec from query parameters. All
// inputs normalize defensively: malformed numbers mean no bound, an
// unknown sort key means no sort, a missing page means the first.
func querySpecFromRequest(c echo.Context) services.QuerySpec {
	return services.QuerySpec{
		CategoryFilter:  c.QueryParam("category"),
		SearchText:      c.QueryParam("search"),
		MinPrice:        utils.ParseOptionalFloat(c.QueryParam("minPrice")),
		MaxPrice:        utils.ParseOptionalFloat(c.QueryParam("maxPrice")),
		VegetarianOnly:  c.QueryParam("vegOnly") == "true",
		AvailableOnly:   c.QueryParam("availableOnly") == "true",
		SortKey:         services.ParseSortKey(c.QueryParam("sortBy")),
		GroupByCategory: c.QueryParam("groupByCategory") == "true",
		Page:            utils.ParsePositiveInt(c.QueryParam("page"), 1),
		PageSize:        utils.ParsePositiveInt(c.QueryParam("pageSize"), services.DefaultPageSize),
	}
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/middleware"
	"github.com/kathirfood/menu_backend/models"
)

// AuthController handles login and token verification.
type AuthController struct {
	gate *middleware.AuthGate
}

// NewAuthController creates a new auth controller
func NewAuthController(gate *middleware.AuthGate) *AuthController {
	return &AuthController{gate: gate}
}

// Login handles POST /api/login. Bad credentials always produce the
// same response, whichever field was wrong.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Username and password are required",
		})
	}

	token, err := ac.gate.IssueToken(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, middleware.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Invalid username or password",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to issue token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    map[string]string{"username": req.Username},
	})
}

// VerifyToken handles GET /api/verify-token. The RequireToken middleware
// has already validated the bearer credential by the time this runs.
func (ac *AuthController) VerifyToken(c echo.Context) error {
	username, _ := c.Get("username").(string)
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Token is valid",
		User:    map[string]string{"username": username},
	})
}

package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/controllers"
	"github.com/kathirfood/menu_backend/middleware"
)

// RegisterAuthRoutes sets up login and token verification.
func RegisterAuthRoutes(e *echo.Echo, gate *middleware.AuthGate) {
	authController := controllers.NewAuthController(gate)

	e.POST("/api/login", authController.Login)
	e.GET("/api/verify-token", authController.VerifyToken, gate.RequireToken())
}

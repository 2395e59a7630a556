// ba-dashboard/internal/routes/auth_routes.go

package routes

import (
	"ba-dashboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication routes. These do not
// pass through the token-checking middleware.
func RegisterAuthRoutes(r *gin.Engine) {
	// Landing route for unauthenticated clients.
	r.GET("/", handlers.ShowLoginPage)

	// Login form handler.
	r.POST("/login", handlers.LoginHandler)
}

// ba-dashboard/internal/routes/router.go

package routes

import (
	"ba-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every route of the service.
func SetupRoutes(r *gin.Engine) {
	// Public routes first: the login page pointer and the login form handler.
	RegisterAuthRoutes(r)

	// Everything else requires an authenticated session.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}

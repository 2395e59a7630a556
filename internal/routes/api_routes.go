// ba-dashboard/internal/routes/api_routes.go

package routes

import (
	"ba-dashboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every route that requires an authenticated
// session.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	// Logout needs the session's username for the access log, so it sits
	// behind the middleware rather than with the public routes.
	api.GET("/logout", handlers.LogoutHandler)

	apiGroup := api.Group("/api")
	{
		apiGroup.GET("/session", handlers.SessionHandler)

		// Raw workbook views (the dashboard's plain table panel).
		sheets := apiGroup.Group("/sheets")
		{
			sheets.GET("", handlers.ListSheetsHandler)
			sheets.GET("/:name", handlers.GetSheetHandler)
		}

		// Derived reports.
		reports := apiGroup.Group("/reports")
		{
			reports.GET("/metrics", handlers.MetricsHandler)
			reports.GET("/enrollment", handlers.EnrollmentReportHandler)
			reports.GET("/cashflow", handlers.CashflowReportHandler)
			reports.GET("/cashflow/export", handlers.ExportCashflowHandler)
		}

		// Static annual statements.
		statements := apiGroup.Group("/statements")
		{
			statements.GET("", handlers.ListStatementsHandler)
			statements.GET("/:kind/:year/download", handlers.DownloadStatementHandler)
		}

		// Access log view.
		apiGroup.GET("/access-log", handlers.ListAccessLogHandler)
	}
}

// ba-dashboard/internal/handlers/access_log_handler.go

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ba-dashboard/models"
)

// ListAccessLogHandler returns the access log, newest first, paginated. A
// broken log store degrades to an empty log so the dashboard stays usable;
// the log is diagnostic, not authoritative.
func ListAccessLogHandler(c *gin.Context) {
	entries, err := LogStore.ReadAll(c.Request.Context())
	if err != nil {
		slog.Warn("Access log read failed, showing empty log", "error", err)
		entries = nil
	}
	if entries == nil {
		entries = make([]models.AccessLogEntry, 0)
	}

	page, pageSize := pageParams(c)
	lo, hi := pageBounds(page, pageSize, len(entries))

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, entries[lo:hi], int64(len(entries))))
}

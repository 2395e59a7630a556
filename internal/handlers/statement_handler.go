// ba-dashboard/internal/handlers/statement_handler.go

package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"ba-dashboard/internal/report"
)

// ListStatementsHandler returns the statement catalog for the report picker,
// including which PDFs are actually on disk.
func ListStatementsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statements": Statements.Catalog()})
}

// DownloadStatementHandler serves one statement PDF as a forced download.
// Inline embedding broke on the hosting setup more than once; attachment
// delivery is the contract now.
func DownloadStatementHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	path, filename, err := Statements.Find(c.Param("kind"), year)
	if err != nil {
		if errors.Is(err, report.ErrStatementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "The report file has not been uploaded yet"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read the report file"})
		return
	}

	// RFC 5987 encoding: the file names are Korean.
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

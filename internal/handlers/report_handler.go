// ba-dashboard/internal/handlers/report_handler.go

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"ba-dashboard/internal/dataset"
	"ba-dashboard/internal/report"
)

// rangeParams reads the from/to month keys. Missing bounds widen to the whole
// dataset; an inverted range is reported and stops the render.
func rangeParams(c *gin.Context) (from, to string, ok bool) {
	from = c.DefaultQuery("from", "0000-01")
	to = c.DefaultQuery("to", "9999-12")
	if from > to {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The selected period is empty"})
		return "", "", false
	}
	return from, to, true
}

// loadDataset fetches the cleaned dataset and reports loader failures. A
// broken data source ends this render but not the session.
func loadDataset(c *gin.Context) (*dataset.Table, bool) {
	table, err := Data.Dataset()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrMissingColumns) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": fmt.Sprintf("Could not load the data file: %v", err)})
		return nil, false
	}
	return table, true
}

// ListSheetsHandler lists the workbook's sheet names in authored order.
func ListSheetsHandler(c *gin.Context) {
	book, err := Data.Workbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Could not load the data file: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sheets": book.SheetNames})
}

// GetSheetHandler returns one worksheet's raw cells for the plain table view.
func GetSheetHandler(c *gin.Context) {
	name := c.Param("name")
	raw, ok := Data.Sheet(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Sheet %q not found", name)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": raw.Name, "columns": raw.Columns, "rows": raw.Cells})
}

// MetricsHandler lists the columns the cash-flow multi-selector can offer.
func MetricsHandler(c *gin.Context) {
	table, ok := loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"metrics": report.Metrics(table),
		"default": report.DefaultCashflowMetrics,
	})
}

// EnrollmentReportHandler renders the enrollment-flow report over the
// selected period.
func EnrollmentReportHandler(c *gin.Context) {
	table, ok := loadDataset(c)
	if !ok {
		return
	}
	from, to, ok := rangeParams(c)
	if !ok {
		return
	}

	res, err := report.Enrollment(table, from, to)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CashflowReportHandler renders the cash-flow report for the selected metrics
// (repeat the metrics query parameter to pick several).
func CashflowReportHandler(c *gin.Context) {
	table, ok := loadDataset(c)
	if !ok {
		return
	}
	from, to, ok := rangeParams(c)
	if !ok {
		return
	}

	res, err := report.Cashflow(table, from, to, c.QueryArray("metrics"))
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ExportCashflowHandler downloads the cash-flow table as an Excel file.
func ExportCashflowHandler(c *gin.Context) {
	table, ok := loadDataset(c)
	if !ok {
		return
	}
	from, to, ok := rangeParams(c)
	if !ok {
		return
	}

	res, err := report.Cashflow(table, from, to, c.QueryArray("metrics"))
	if err != nil {
		reportError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "자금현황"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range res.Table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	for r, row := range res.Table.Rows {
		for i, value := range row {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	fileName := fmt.Sprintf("cashflow_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

func reportError(c *gin.Context, err error) {
	if errors.Is(err, report.ErrNoData) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data for the current selection"})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

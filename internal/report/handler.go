package report

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Generate aggregated + expanded report tables
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	bundle, err := h.service.Build(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoHistory) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Reports generated successfully!",
		"weekly":         bundle.Weekly,
		"monthly":        bundle.Monthly,
		"most_expanded":  bundle.Most,
		"least_expanded": bundle.Least,
	})
}

// --------------------------------------------------
// CSV export of one report table
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	bundle, err := h.service.Build(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoHistory) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	table := c.DefaultQuery("table", "weekly")
	var buf bytes.Buffer
	switch table {
	case "weekly":
		err = WriteWeeklyCSV(&buf, bundle.Weekly)
	case "monthly":
		err = WriteMonthlyCSV(&buf, bundle.Monthly)
	case "most":
		err = WriteFactsCSV(&buf, bundle.Most)
	case "least":
		err = WriteFactsCSV(&buf, bundle.Least)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "table must be weekly, monthly, most or least"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+table+`_report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

type consumptionReportRequest struct {
	ReportType string `json:"report_type"` // "weekly" or "monthly"
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	MonthYear  string `json:"month_year"`
}

// --------------------------------------------------
// Admin consumption report (PDF)
// --------------------------------------------------
func (h *Handler) ConsumptionReport(c *gin.Context) {
	var req consumptionReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var (
		pdfBytes []byte
		url      string
		err      error
	)

	switch req.ReportType {
	case "weekly":
		var start, end time.Time
		start, err = time.Parse(consumption.DateLayout, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be DD/MM/YYYY"})
			return
		}
		end, err = time.Parse(consumption.DateLayout, req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be DD/MM/YYYY"})
			return
		}
		pdfBytes, url, err = h.service.WeeklyConsumptionPDF(c.Request.Context(), start, end)

	case "monthly":
		pdfBytes, url, err = h.service.MonthlyConsumptionPDF(c.Request.Context(), req.MonthYear)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_type must be weekly or monthly"})
		return
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoHistory) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if url != "" {
		c.Header("X-Report-URL", url)
	}
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

package holiday

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type scheduleRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *Handler) Create(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	start, err := time.Parse(consumption.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be DD/MM/YYYY"})
		return
	}
	end, err := time.Parse(consumption.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be DD/MM/YYYY"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date before start_date"})
		return
	}

	period := &Period{Name: req.Name, Start: start, End: end}
	if err := h.repo.Save(c.Request.Context(), period, c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, period)
}

// UploadCSV ingests a holiday schedule file
// (columns Holiday, Start Date, End Date).
func (h *Handler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("data_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data_file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open uploaded file"})
		return
	}
	defer file.Close()

	cal, err := ReadCalendar(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(cal) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid holiday rows in file"})
		return
	}

	createdBy := c.GetString("userID")
	for i := range cal {
		p := cal[i]
		if err := h.repo.Save(c.Request.Context(), &p, createdBy); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Holiday schedule uploaded successfully!",
		"count":   len(cal),
	})
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
			return
		}
		cal, err := h.repo.ListByYear(ctx, year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"holidays": cal})
		return
	}

	cal, err := h.repo.ListAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": cal})
}

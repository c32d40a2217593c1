package suggest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type suggestRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// --------------------------------------------------
// Staff requests a suggested menu for a date range
// --------------------------------------------------
func (h *Handler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
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

	run, err := h.service.Suggest(c.Request.Context(), start, end)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, report.ErrNoHistory) || errors.Is(err, ErrInvertedRange) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runResponse(run))
}

// --------------------------------------------------
// View a stored suggestion
// --------------------------------------------------
func (h *Handler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		run *Run
		err error
	)
	if id := c.Query("run_id"); id != "" {
		run, err = h.service.Get(ctx, id)
	} else {
		run, err = h.service.Latest(ctx)
	}

	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no suggested menu available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runResponse(run))
}

type entryResponse struct {
	Date            string  `json:"date"`
	MealType        string  `json:"meal_type"`
	DishName        string  `json:"dish_name"`
	PlannedQuantity float64 `json:"planned_quantity"`
	IsHoliday       bool    `json:"is_holiday"`
}

func runResponse(run *Run) gin.H {
	entries := make([]entryResponse, 0, len(run.Entries))
	for _, e := range run.Entries {
		entries = append(entries, entryResponse{
			Date:            e.Date.Format(consumption.DateLayout),
			MealType:        string(e.Meal),
			DishName:        e.Dish,
			PlannedQuantity: e.QuantityKg,
			IsHoliday:       e.Holiday,
		})
	}
	return gin.H{
		"run_id":     run.ID,
		"start_date": run.StartDate.Format(consumption.DateLayout),
		"end_date":   run.EndDate.Format(consumption.DateLayout),
		"menu":       entries,
	}
}

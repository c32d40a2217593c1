package menu

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/suggest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// canSeeQuantities: students see dish names only.
func canSeeQuantities(c *gin.Context) bool {
	role := c.GetString("userRole")
	return role == "ADMIN" || role == "MESS_STAFF"
}

// --------------------------------------------------
// Today's menu
// --------------------------------------------------
func (h *Handler) Today(c *gin.Context) {
	day, err := h.service.Today(c.Request.Context(), canSeeQuantities(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}

// --------------------------------------------------
// Menu for a date range
// --------------------------------------------------
func (h *Handler) Range(c *gin.Context) {
	start, err := time.Parse(consumption.DateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be DD/MM/YYYY"})
		return
	}
	end, err := time.Parse(consumption.DateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be DD/MM/YYYY"})
		return
	}

	menus, err := h.service.Range(c.Request.Context(), start, end, canSeeQuantities(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(menus) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No menu data available for the given date range.",
			"menus":   []DayMenu{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// --------------------------------------------------
// Accept a suggested menu into the plan
// --------------------------------------------------
func (h *Handler) AcceptSuggestion(c *gin.Context) {
	var req struct {
		RunID string `json:"run_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	count, err := h.service.AcceptSuggestion(c.Request.Context(), req.RunID)
	if err != nil {
		if errors.Is(err, suggest.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "suggestion run not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Suggested menu accepted.",
		"entries_added": count,
	})
}

// --------------------------------------------------
// Add a single item by hand
// --------------------------------------------------
func (h *Handler) AddEntry(c *gin.Context) {
	var req struct {
		Date       string  `json:"date"`
		MealType   string  `json:"meal_type"`
		DishName   string  `json:"dish_name"`
		QuantityKg float64 `json:"quantity_kg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := time.Parse(consumption.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be DD/MM/YYYY"})
		return
	}
	meal, ok := consumption.ParseMealType(req.MealType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be Breakfast, Lunch or Dinner"})
		return
	}

	entry := PlanEntry{Date: date, Meal: meal, Dish: req.DishName, QuantityKg: req.QuantityKg}
	if err := h.service.AddEntry(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// --------------------------------------------------
// Meal feedback
// --------------------------------------------------
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req struct {
		MealDate string `json:"meal_date"`
		MealType string `json:"meal_type"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := time.Parse(consumption.DateLayout, req.MealDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_date must be DD/MM/YYYY"})
		return
	}
	meal, ok := consumption.ParseMealType(req.MealType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be Breakfast, Lunch or Dinner"})
		return
	}

	fb := &Feedback{
		UserID:   c.GetString("userID"),
		MealDate: date,
		Meal:     meal,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := h.service.SubmitFeedback(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

package consumption

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type recordRequest struct {
	Date       string  `json:"date"`
	MealType   string  `json:"meal_type"`
	DishName   string  `json:"dish_name"`
	QuantityKg float64 `json:"quantity_kg"`
}

// --------------------------------------------------
// Staff records a served dish
// --------------------------------------------------
func (h *Handler) Record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be DD/MM/YYYY"})
		return
	}
	meal, ok := ParseMealType(req.MealType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be Breakfast, Lunch or Dinner"})
		return
	}

	rec := &Record{
		Date:       date,
		Meal:       meal,
		Dish:       req.DishName,
		QuantityKg: req.QuantityKg,
		RecordedBy: c.GetString("userID"),
	}
	if err := h.service.Record(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// --------------------------------------------------
// Staff uploads historical data as CSV
// --------------------------------------------------
func (h *Handler) UploadCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("data_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data_file is required"})
		return
	}
	defer file.Close()

	count, err := h.service.ImportCSV(c.Request.Context(), file, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Consumption data imported.",
		"records_imported": count,
	})
}

// --------------------------------------------------
// Waste tracking
// --------------------------------------------------
func (h *Handler) RecordWaste(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be DD/MM/YYYY"})
		return
	}
	meal, ok := ParseMealType(req.MealType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be Breakfast, Lunch or Dinner"})
		return
	}

	rec := &WasteRecord{
		Date:       date,
		Meal:       meal,
		Dish:       req.DishName,
		QuantityKg: req.QuantityKg,
		RecordedBy: c.GetString("userID"),
	}
	if err := h.service.RecordWaste(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) WasteReport(c *gin.Context) {
	start, err := time.Parse(DateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be DD/MM/YYYY"})
		return
	}
	end, err := time.Parse(DateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be DD/MM/YYYY"})
		return
	}

	totals, err := h.service.WasteReport(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"waste": totals})
}

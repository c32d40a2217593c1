package menu

import (
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// PlanEntry is one dish on the accepted menu plan for a date and meal.
// Quantity is planned kitchen output; zero when an item was added by
// hand without an estimate.
type PlanEntry struct {
	Date       time.Time            `json:"date"`
	Meal       consumption.MealType `json:"meal_type"`
	Dish       string               `json:"dish_name"`
	QuantityKg float64              `json:"quantity_kg"`
}

// DayMenu groups one day's plan by meal for API responses.
type DayMenu struct {
	Date      string      `json:"date"`
	Breakfast []PlanEntry `json:"breakfast"`
	Lunch     []PlanEntry `json:"lunch"`
	Dinner    []PlanEntry `json:"dinner"`
}

// Feedback is a diner's rating of one served meal.
type Feedback struct {
	UserID   string               `json:"user_id"`
	MealDate time.Time            `json:"meal_date"`
	Meal     consumption.MealType `json:"meal_type"`
	Rating   int                  `json:"rating"` // 1..5
	Comment  string               `json:"comment"`
}

package consumption

import (
	"context"
	"time"
)

// WasteTotal is one row of the waste report: total leftover per dish.
type WasteTotal struct {
	Dish    string  `json:"dish_name"`
	TotalKg float64 `json:"total_waste_kg"`
}

// Repository defines all database operations for consumption data.
// Service depends ONLY on this interface.
type Repository interface {
	SaveRecord(ctx context.Context, rec *Record) error
	SaveRecords(ctx context.Context, recs []Record) error
	ListRecords(ctx context.Context, start, end time.Time) ([]Record, error)
	ListAllRecords(ctx context.Context) ([]Record, error)

	SaveWaste(ctx context.Context, rec *WasteRecord) error
	WasteTotals(ctx context.Context, start, end time.Time) ([]WasteTotal, error)
}

package menu

import (
	"context"
	"time"
)

// Repository defines all database operations for the menu plan.
// Service depends ONLY on this interface.
type Repository interface {
	AddEntries(ctx context.Context, entries []PlanEntry) error
	ListRange(ctx context.Context, start, end time.Time) ([]PlanEntry, error)
	SaveFeedback(ctx context.Context, fb *Feedback) error
}

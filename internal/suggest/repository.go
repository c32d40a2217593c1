package suggest

import (
	"context"
	"time"
)

// Run is one persisted suggestion: every entry produced for a requested
// date range.
type Run struct {
	ID        string    `json:"run_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Repository stores suggestion runs until staff accept or discard them.
type Repository interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	LatestRun(ctx context.Context) (*Run, error)
}

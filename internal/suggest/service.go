package suggest

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/holiday"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
)

// HolidaySource provides the schedule the composer adjusts for.
type HolidaySource interface {
	ListAll(ctx context.Context) (holiday.Calendar, error)
}

type Service struct {
	reports  *report.Service
	holidays HolidaySource
	repo     Repository
	cfg      Config
	// newRand builds one random source per request. Injected so tests
	// can seed it; defaults to a time-seeded source.
	newRand func() *rand.Rand
}

func NewService(reports *report.Service, holidays HolidaySource, repo Repository, cfg Config) *Service {
	return &Service{
		reports:  reports,
		holidays: holidays,
		repo:     repo,
		cfg:      cfg,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SetRandFactory overrides the per-request random source, for
// reproducible runs.
func (s *Service) SetRandFactory(f func() *rand.Rand) {
	s.newRand = f
}

// Suggest builds the full pipeline for one request: aggregation bundle,
// holiday calendar, estimator (learned when trainable, rule-based
// otherwise), then day-by-day composition. Every table and the estimator
// are scoped to this call.
func (s *Service) Suggest(ctx context.Context, start, end time.Time) (*Run, error) {
	if end.Before(start) {
		return nil, ErrInvertedRange
	}

	bundle, err := s.reports.Build(ctx)
	if err != nil {
		return nil, err
	}

	cal, err := s.holidays.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	qualifying := cal.Qualifying()

	rng := s.newRand()
	history := NewHistoryEstimator(bundle.Most, bundle.Least, rng)

	var est Estimator = history
	if trained, err := TrainRegression(bundle.Most, bundle.Least, qualifying, history); err == nil {
		est = trained
	} else {
		log.Printf("[SUGGEST] falling back to rule-based estimator: %v", err)
	}

	composer := NewComposer(bundle.Most, bundle.Least, qualifying, est, rng, s.cfg)
	entries, err := composer.Suggest(start, end)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:        uuid.New().String(),
		StartDate: start,
		EndDate:   end,
		CreatedAt: time.Now(),
		Entries:   entries,
	}
	if err := s.repo.SaveRun(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Latest returns the most recent suggestion run.
func (s *Service) Latest(ctx context.Context) (*Run, error) {
	return s.repo.LatestRun(ctx)
}

// Get returns one run by id.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	return s.repo.GetRun(ctx, id)
}

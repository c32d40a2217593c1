package menu

import (
	"context"
	"errors"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/suggest"
)

// SuggestionSource hands over a stored suggestion run for acceptance.
type SuggestionSource interface {
	Get(ctx context.Context, id string) (*suggest.Run, error)
}

type Service struct {
	repo        Repository
	suggestions SuggestionSource
}

func NewService(repo Repository, suggestions SuggestionSource) *Service {
	return &Service{repo: repo, suggestions: suggestions}
}

// AcceptSuggestion copies a suggestion run into the accepted menu plan.
func (s *Service) AcceptSuggestion(ctx context.Context, runID string) (int, error) {
	if runID == "" {
		return 0, errors.New("run_id is required")
	}

	run, err := s.suggestions.Get(ctx, runID)
	if err != nil {
		return 0, err
	}
	if len(run.Entries) == 0 {
		return 0, errors.New("suggestion run is empty")
	}

	entries := make([]PlanEntry, 0, len(run.Entries))
	for _, e := range run.Entries {
		entries = append(entries, PlanEntry{
			Date:       e.Date,
			Meal:       e.Meal,
			Dish:       e.Dish,
			QuantityKg: e.QuantityKg,
		})
	}

	if err := s.repo.AddEntries(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// AddEntry places a single hand-picked dish on the plan.
func (s *Service) AddEntry(ctx context.Context, entry PlanEntry) error {
	if entry.Dish == "" {
		return errors.New("dish_name is required")
	}
	return s.repo.AddEntries(ctx, []PlanEntry{entry})
}

// Range returns the plan between two dates grouped by day. Quantities are
// stripped unless the caller may see them (staff and admin only).
func (s *Service) Range(ctx context.Context, start, end time.Time, withQuantities bool) ([]DayMenu, error) {
	if end.Before(start) {
		return nil, errors.New("end_date before start_date")
	}

	entries, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var (
		order []string
		days  = make(map[string]*DayMenu)
	)
	for _, e := range entries {
		if !withQuantities {
			e.QuantityKg = 0
		}
		key := e.Date.Format(consumption.DateLayout)
		day, ok := days[key]
		if !ok {
			day = &DayMenu{Date: key}
			days[key] = day
			order = append(order, key)
		}
		switch e.Meal {
		case consumption.Breakfast:
			day.Breakfast = append(day.Breakfast, e)
		case consumption.Lunch:
			day.Lunch = append(day.Lunch, e)
		case consumption.Dinner:
			day.Dinner = append(day.Dinner, e)
		}
	}

	out := make([]DayMenu, 0, len(order))
	for _, key := range order {
		out = append(out, *days[key])
	}
	return out, nil
}

// Today returns the current day's menu.
func (s *Service) Today(ctx context.Context, withQuantities bool) (*DayMenu, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	menus, err := s.Range(ctx, today, today, withQuantities)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return &DayMenu{Date: today.Format(consumption.DateLayout)}, nil
	}
	return &menus[0], nil
}

// SubmitFeedback stores a diner's rating of a served meal.
func (s *Service) SubmitFeedback(ctx context.Context, fb *Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return s.repo.SaveFeedback(ctx, fb)
}

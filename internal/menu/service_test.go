package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/suggest"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockRepository struct {
	entries  []PlanEntry
	feedback []Feedback
}

func (m *mockRepository) AddEntries(ctx context.Context, entries []PlanEntry) error {
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockRepository) ListRange(ctx context.Context, start, end time.Time) ([]PlanEntry, error) {
	var out []PlanEntry
	for _, e := range m.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepository) SaveFeedback(ctx context.Context, fb *Feedback) error {
	m.feedback = append(m.feedback, *fb)
	return nil
}

type mockSuggestions struct {
	runs map[string]*suggest.Run
}

func (m *mockSuggestions) Get(ctx context.Context, id string) (*suggest.Run, error) {
	run, ok := m.runs[id]
	if !ok {
		return nil, errors.New("run not found")
	}
	return run, nil
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(consumption.DateLayout, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestAcceptSuggestion(t *testing.T) {
	repo := &mockRepository{}
	date := testDate(t, "02/09/2024")
	suggestions := &mockSuggestions{runs: map[string]*suggest.Run{
		"run-1": {
			ID: "run-1",
			Entries: []suggest.Entry{
				{Date: date, Meal: consumption.Lunch, Dish: "Dal Tadka", QuantityKg: 12.5},
				{Date: date, Meal: consumption.Lunch, Dish: "Rajma", QuantityKg: 8},
			},
		},
	}}

	service := NewService(repo, suggestions)

	n, err := service.AcceptSuggestion(context.Background(), "run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || len(repo.entries) != 2 {
		t.Fatalf("expected 2 plan entries, got n=%d stored=%d", n, len(repo.entries))
	}
	if repo.entries[0].Dish != "Dal Tadka" || repo.entries[0].QuantityKg != 12.5 {
		t.Errorf("entry not carried over: %+v", repo.entries[0])
	}
}

func TestAcceptSuggestion_Errors(t *testing.T) {
	service := NewService(&mockRepository{}, &mockSuggestions{runs: map[string]*suggest.Run{
		"empty": {ID: "empty"},
	}})

	if _, err := service.AcceptSuggestion(context.Background(), ""); err == nil {
		t.Error("expected error for missing run_id")
	}
	if _, err := service.AcceptSuggestion(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := service.AcceptSuggestion(context.Background(), "empty"); err == nil {
		t.Error("expected error for empty run")
	}
}

func TestRange_GroupsByDayAndMeal(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, nil)
	ctx := context.Background()

	d1 := testDate(t, "02/09/2024")
	d2 := testDate(t, "03/09/2024")
	repo.AddEntries(ctx, []PlanEntry{
		{Date: d1, Meal: consumption.Breakfast, Dish: "Idli", QuantityKg: 5},
		{Date: d1, Meal: consumption.Lunch, Dish: "Dal Tadka", QuantityKg: 12},
		{Date: d2, Meal: consumption.Dinner, Dish: "Tawa Roti", QuantityKg: 20},
	})

	menus, err := service.Range(ctx, d1, d2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menus) != 2 {
		t.Fatalf("expected 2 days, got %d", len(menus))
	}
	if len(menus[0].Breakfast) != 1 || len(menus[0].Lunch) != 1 || len(menus[0].Dinner) != 0 {
		t.Errorf("day 1 grouping: %+v", menus[0])
	}
	if menus[0].Lunch[0].QuantityKg != 12 {
		t.Errorf("staff view must keep quantities: %+v", menus[0].Lunch[0])
	}
}

func TestRange_StripsQuantitiesForDiners(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, nil)
	ctx := context.Background()

	d := testDate(t, "02/09/2024")
	repo.AddEntries(ctx, []PlanEntry{
		{Date: d, Meal: consumption.Lunch, Dish: "Dal Tadka", QuantityKg: 12},
	})

	menus, err := service.Range(ctx, d, d, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if menus[0].Lunch[0].QuantityKg != 0 {
		t.Errorf("diner view must strip quantities: %+v", menus[0].Lunch[0])
	}
}

func TestRange_InvertedWindow(t *testing.T) {
	service := NewService(&mockRepository{}, nil)
	d := testDate(t, "02/09/2024")
	if _, err := service.Range(context.Background(), d, d.AddDate(0, 0, -1), true); err == nil {
		t.Fatal("expected error for inverted window")
	}
}

func TestAddEntry(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, nil)
	ctx := context.Background()

	if err := service.AddEntry(ctx, PlanEntry{Dish: ""}); err == nil {
		t.Error("expected error for empty dish")
	}
	if err := service.AddEntry(ctx, PlanEntry{Date: testDate(t, "02/09/2024"), Meal: consumption.Lunch, Dish: "Kheer"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
}

func TestSubmitFeedback_RatingBounds(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, nil)
	ctx := context.Background()

	base := Feedback{UserID: "u1", MealDate: testDate(t, "02/09/2024"), Meal: consumption.Lunch}

	for _, rating := range []int{0, 6, -1} {
		fb := base
		fb.Rating = rating
		if err := service.SubmitFeedback(ctx, &fb); err == nil {
			t.Errorf("rating %d must be rejected", rating)
		}
	}

	fb := base
	fb.Rating = 4
	if err := service.SubmitFeedback(ctx, &fb); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(repo.feedback) != 1 {
		t.Fatalf("expected 1 feedback row, got %d", len(repo.feedback))
	}
}

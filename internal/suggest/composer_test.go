package suggest

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/holiday"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
)

// fixedEstimator always returns the same quantity, so composition tests
// are independent of random draws.
type fixedEstimator struct {
	kg float64
}

func (f fixedEstimator) Estimate(string, consumption.MealType, time.Time) float64 {
	return f.kg
}

func lunchFacts(t *testing.T, dishes ...string) []report.Fact {
	t.Helper()
	facts := make([]report.Fact, 0, len(dishes))
	for i, dish := range dishes {
		// descending quantities so the first dish is the staple
		facts = append(facts, weekFact(t, dish, consumption.Lunch, float64(100-i*10)))
	}
	return facts
}

func entriesFor(entries []Entry, date time.Time, meal consumption.MealType) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Date.Equal(date) && e.Meal == meal {
			out = append(out, e)
		}
	}
	return out
}

// --------------------------------------------------
// Selection
// --------------------------------------------------

func TestComposer_StapleLeadsLunch(t *testing.T) {
	most := lunchFacts(t, "Dal Tadka", "Rajma", "Kadhi Pakora")
	least := lunchFacts(t, "Baingan Bharta", "Lauki Kofta")

	c := NewComposer(most, least, nil, fixedEstimator{kg: 2}, rand.New(rand.NewSource(1)), DefaultConfig())

	date := testDate(t, "02/09/2024")
	entries, err := c.Suggest(date, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lunch := entriesFor(entries, date, consumption.Lunch)
	if len(lunch) != 3 {
		t.Fatalf("expected 3 lunch dishes, got %d", len(lunch))
	}
	if lunch[0].Dish != "Dal Tadka" {
		t.Errorf("expected staple Dal Tadka first, got %q", lunch[0].Dish)
	}
}

func TestComposer_NoDuplicateOrSimilarDishes(t *testing.T) {
	// Jeera Rice and Lemon Rice share the "rice" base and must never
	// appear together.
	most := lunchFacts(t, "Jeera Rice", "Lemon Rice", "Dal Tadka")
	least := lunchFacts(t, "Coconut Rice", "Rajma", "Baingan Bharta")

	for seed := int64(0); seed < 20; seed++ {
		c := NewComposer(most, least, nil, fixedEstimator{kg: 2}, rand.New(rand.NewSource(seed)), DefaultConfig())
		date := testDate(t, "02/09/2024")
		entries, err := c.Suggest(date, date)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		lunch := entriesFor(entries, date, consumption.Lunch)
		for i := range lunch {
			for j := i + 1; j < len(lunch); j++ {
				if lunch[i].Dish == lunch[j].Dish {
					t.Fatalf("seed %d: duplicate dish %q", seed, lunch[i].Dish)
				}
				if dishesSimilar(lunch[i].Dish, lunch[j].Dish) {
					t.Fatalf("seed %d: similar dishes %q and %q", seed, lunch[i].Dish, lunch[j].Dish)
				}
			}
		}
	}
}

func TestComposer_ShortMealWhenPoolExhausted(t *testing.T) {
	// every candidate clashes with the staple
	most := lunchFacts(t, "Steamed Rice", "Jeera Rice")
	least := lunchFacts(t, "Lemon Rice")

	c := NewComposer(most, least, nil, fixedEstimator{kg: 2}, rand.New(rand.NewSource(1)), DefaultConfig())
	date := testDate(t, "02/09/2024")
	entries, err := c.Suggest(date, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lunch := entriesFor(entries, date, consumption.Lunch)
	if len(lunch) != 1 {
		t.Fatalf("expected staple only, got %d dishes", len(lunch))
	}
	if lunch[0].Dish != "Steamed Rice" {
		t.Errorf("expected Steamed Rice, got %q", lunch[0].Dish)
	}
}

func TestComposer_BreakfastHasNoStaple(t *testing.T) {
	most := []report.Fact{
		weekFact(t, "Idli", consumption.Breakfast, 50),
		weekFact(t, "Poha", consumption.Breakfast, 40),
	}
	least := []report.Fact{
		weekFact(t, "Upma", consumption.Breakfast, 10),
		weekFact(t, "Daliya", consumption.Breakfast, 8),
	}

	c := NewComposer(most, least, nil, fixedEstimator{kg: 2}, rand.New(rand.NewSource(5)), DefaultConfig())
	date := testDate(t, "02/09/2024")
	entries, err := c.Suggest(date, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakfast := entriesFor(entries, date, consumption.Breakfast)
	if len(breakfast) != 3 {
		t.Fatalf("expected 3 breakfast dishes, got %d", len(breakfast))
	}
	// first pick comes from the most pool, later picks from the least pool
	if breakfast[0].Dish != "Idli" && breakfast[0].Dish != "Poha" {
		t.Errorf("first breakfast dish %q not from most pool", breakfast[0].Dish)
	}
}

// --------------------------------------------------
// Holiday handling
// --------------------------------------------------

func qualifyingWeek(t *testing.T, name, start string) holiday.Period {
	t.Helper()
	s := testDate(t, start)
	return holiday.Period{Name: name, Start: s, End: s.AddDate(0, 0, 7)}
}

func TestComposer_HolidayDiscountsQuantity(t *testing.T) {
	most := lunchFacts(t, "Dal Tadka", "Rajma", "Kadhi Pakora", "Chole")
	least := lunchFacts(t, "Baingan Bharta", "Lauki Kofta", "Veg Kofta Curry")

	cal := holiday.Calendar{qualifyingWeek(t, "Diwali", "26/10/2024")}.Qualifying()
	if len(cal) != 1 {
		t.Fatal("fixture period should qualify")
	}

	c := NewComposer(most, least, cal, fixedEstimator{kg: 2}, rand.New(rand.NewSource(1)), DefaultConfig())

	inside := testDate(t, "28/10/2024")
	outside := testDate(t, "15/10/2024")

	entries, err := c.Suggest(inside, inside)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entriesFor(entries, inside, consumption.Lunch) {
		if !e.Holiday {
			t.Errorf("holiday flag not set on %+v", e)
		}
		if e.QuantityKg != 1.5 { // 2 * 0.75
			t.Errorf("expected discounted 1.50, got %v", e.QuantityKg)
		}
	}

	entries, err = c.Suggest(outside, outside)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entriesFor(entries, outside, consumption.Lunch) {
		if e.Holiday {
			t.Errorf("holiday flag set outside period: %+v", e)
		}
		if e.QuantityKg != 2 {
			t.Errorf("expected undiscounted 2, got %v", e.QuantityKg)
		}
	}
}

func TestComposer_ShortBreakDoesNotQualify(t *testing.T) {
	s := testDate(t, "21/03/2025")
	short := holiday.Calendar{
		{Name: "Holi", Start: s, End: s.AddDate(0, 0, 6)}, // 6 days, below threshold
	}

	if got := short.Qualifying(); len(got) != 0 {
		t.Fatalf("6-day period must not qualify, got %d", len(got))
	}
}

func TestComposer_HolidayDiscountRespectsFloor(t *testing.T) {
	most := lunchFacts(t, "Dal Tadka", "Rajma", "Kadhi Pakora", "Chole")
	cal := holiday.Calendar{qualifyingWeek(t, "Diwali", "26/10/2024")}

	// 0.6 * 0.75 = 0.45, below the floor
	c := NewComposer(most, nil, cal, fixedEstimator{kg: 0.6}, rand.New(rand.NewSource(1)), DefaultConfig())

	date := testDate(t, "28/10/2024")
	entries, err := c.Suggest(date, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if e.QuantityKg < MinQuantityKg {
			t.Errorf("quantity %v below floor", e.QuantityKg)
		}
	}
}

func TestComposer_SpecialMenuPolicy(t *testing.T) {
	most := lunchFacts(t, "Dal Tadka", "Rajma", "Kadhi Pakora")

	cfg := DefaultConfig()
	cfg.Policy = PolicySpecialMenu
	cfg.SpecialMenus = map[string]map[consumption.MealType][]string{
		"Diwali": {
			consumption.Lunch: {"Veg Biryani", "Paneer Makhani", "Special Dal"},
		},
	}

	cal := holiday.Calendar{qualifyingWeek(t, "Diwali", "26/10/2024")}
	c := NewComposer(most, nil, cal, fixedEstimator{kg: 2}, rand.New(rand.NewSource(1)), cfg)

	date := testDate(t, "28/10/2024")
	entries, err := c.Suggest(date, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lunch := entriesFor(entries, date, consumption.Lunch)
	want := []string{"Veg Biryani", "Paneer Makhani", "Special Dal"}
	if len(lunch) != len(want) {
		t.Fatalf("expected %d dishes, got %d", len(want), len(lunch))
	}
	for i, e := range lunch {
		if e.Dish != want[i] {
			t.Errorf("dish %d: got %q, want %q", i, e.Dish, want[i])
		}
		if e.QuantityKg != 1.5 {
			t.Errorf("discount must still apply, got %v", e.QuantityKg)
		}
	}

	// breakfast has no configured special menu, falls back to selection
	if len(entriesFor(entries, date, consumption.Breakfast)) != 0 {
		// most table has no breakfast dishes, so selection yields nothing
		t.Error("expected empty breakfast from empty pools")
	}
}

// --------------------------------------------------
// Range handling
// --------------------------------------------------

func TestComposer_InvertedRange(t *testing.T) {
	c := NewComposer(nil, nil, nil, fixedEstimator{kg: 1}, rand.New(rand.NewSource(1)), DefaultConfig())
	if _, err := c.Suggest(testDate(t, "10/09/2024"), testDate(t, "01/09/2024")); !errors.Is(err, ErrInvertedRange) {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}
}

func TestComposer_EveryDayCovered(t *testing.T) {
	most := lunchFacts(t, "Dal Tadka", "Rajma", "Kadhi Pakora", "Chole")
	least := lunchFacts(t, "Baingan Bharta", "Lauki Kofta", "Veg Kofta Curry")

	c := NewComposer(most, least, nil, fixedEstimator{kg: 2}, rand.New(rand.NewSource(1)), DefaultConfig())

	start := testDate(t, "01/09/2024")
	end := testDate(t, "07/09/2024")
	entries, err := c.Suggest(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e.Date.Format(consumption.DateLayout)] = true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !seen[d.Format(consumption.DateLayout)] {
			t.Errorf("no entries for %s", d.Format(consumption.DateLayout))
		}
	}
}

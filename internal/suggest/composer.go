package suggest

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/holiday"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
)

// ErrInvertedRange rejects a request whose end date precedes its start.
var ErrInvertedRange = errors.New("end_date before start_date")

// HolidayPolicy selects how a qualifying holiday changes the menu.
type HolidayPolicy int

const (
	// PolicyDiscount keeps the normal selection and scales quantities by
	// the adjustment factor.
	PolicyDiscount HolidayPolicy = iota
	// PolicySpecialMenu serves a fixed named menu for the holiday when
	// one is configured, falling back to normal selection otherwise.
	// The discount still applies.
	PolicySpecialMenu
)

// Config bounds one composition run.
type Config struct {
	NDishes          int
	AdjustmentFactor float64
	Policy           HolidayPolicy
	// SpecialMenus maps holiday name -> meal -> fixed dish list
	// (PolicySpecialMenu only). Breakfast lists never carry a staple.
	SpecialMenus map[string]map[consumption.MealType][]string
}

// DefaultConfig mirrors the operational defaults: three dishes per meal,
// a 25% holiday reduction, plain discount policy.
func DefaultConfig() Config {
	return Config{NDishes: 3, AdjustmentFactor: 0.75, Policy: PolicyDiscount}
}

// Entry is one planned dish of the suggested menu.
type Entry struct {
	Date       time.Time            `json:"date"`
	Meal       consumption.MealType `json:"meal_type"`
	Dish       string               `json:"dish_name"`
	QuantityKg float64              `json:"planned_quantity"`
	Holiday    bool                 `json:"is_holiday"`
}

// Composer walks a date range day by day, meal by meal, selecting a
// bounded non-redundant dish set and pairing each dish with an estimated
// quantity. One Composer serves one request; it owns its tables, its
// estimator and its random source.
type Composer struct {
	most     []report.Fact
	least    []report.Fact
	holidays holiday.Calendar // qualifying periods only
	est      Estimator
	rng      *rand.Rand
	cfg      Config
}

func NewComposer(most, least []report.Fact, holidays holiday.Calendar, est Estimator, rng *rand.Rand, cfg Config) *Composer {
	if cfg.NDishes <= 0 {
		cfg.NDishes = 3
	}
	if cfg.AdjustmentFactor <= 0 {
		cfg.AdjustmentFactor = 0.75
	}
	return &Composer{
		most:     most,
		least:    least,
		holidays: holidays,
		est:      est,
		rng:      rng,
		cfg:      cfg,
	}
}

// Suggest produces the full menu for [start, end], ordered by date then
// meal then selection order. A short meal is acceptable when candidates
// run out; an inverted range is a caller error.
func (c *Composer) Suggest(start, end time.Time) ([]Entry, error) {
	if end.Before(start) {
		return nil, ErrInvertedRange
	}

	var menu []Entry
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		menu = append(menu, c.suggestDay(date)...)
	}
	return menu, nil
}

func (c *Composer) suggestDay(date time.Time) []Entry {
	period, onHoliday := c.holidays.Find(date)

	var entries []Entry
	for _, meal := range consumption.MealOrder {
		var selected []string
		if onHoliday && c.cfg.Policy == PolicySpecialMenu {
			selected = c.specialMenu(period.Name, meal)
		}
		if selected == nil {
			selected = c.selectDishes(meal)
		}

		for _, dish := range selected {
			quantity := c.est.Estimate(dish, meal, date)
			if onHoliday {
				quantity *= c.cfg.AdjustmentFactor
			}
			quantity = math.Round(quantity*100) / 100
			if quantity < MinQuantityKg {
				quantity = MinQuantityKg
			}
			entries = append(entries, Entry{
				Date:       date,
				Meal:       meal,
				Dish:       dish,
				QuantityKg: quantity,
				Holiday:    onHoliday,
			})
		}
	}
	return entries
}

func (c *Composer) specialMenu(holidayName string, meal consumption.MealType) []string {
	menus, ok := c.cfg.SpecialMenus[holidayName]
	if !ok {
		return nil
	}
	dishes := menus[meal]
	if len(dishes) == 0 {
		return nil
	}
	out := make([]string, len(dishes))
	copy(out, dishes)
	return out
}

// selectDishes fills up to NDishes for one meal: a staple first for lunch
// and dinner, then draws from the most-consumed pool for the first half
// of the target and the least-consumed pool for the rest. Candidates
// already selected or similar to a selection are skipped; an exhausted
// pool ends the meal early.
func (c *Composer) selectDishes(meal consumption.MealType) []string {
	var selected []string
	if meal == consumption.Lunch || meal == consumption.Dinner {
		if staple := c.stapleDish(meal); staple != "" {
			selected = append(selected, staple)
		}
	}

	mostPool := dishNames(c.most, meal)
	leastPool := dishNames(c.least, meal)

	for len(selected) < c.cfg.NDishes {
		pool := mostPool
		if len(selected) >= c.cfg.NDishes/2 {
			pool = leastPool
		}

		var candidates []string
		for _, dish := range pool {
			if containsString(selected, dish) || similarToAny(dish, selected) {
				continue
			}
			candidates = append(candidates, dish)
		}
		if len(candidates) == 0 {
			break
		}

		selected = append(selected, candidates[c.rng.Intn(len(candidates))])
	}
	return selected
}

// stapleDish is the single highest cumulative quantity in the
// most-consumed table for the meal; ties keep the first encountered.
func (c *Composer) stapleDish(meal consumption.MealType) string {
	totals := make(map[string]float64)
	var order []string
	for _, f := range c.most {
		if f.Meal != meal {
			continue
		}
		if _, ok := totals[f.Dish]; !ok {
			order = append(order, f.Dish)
		}
		totals[f.Dish] += f.QuantityKg
	}

	staple := ""
	best := math.Inf(-1)
	for _, dish := range order {
		if totals[dish] > best {
			staple = dish
			best = totals[dish]
		}
	}
	return staple
}

// dishNames lists the distinct dish names of a meal's fact table in
// encounter order.
func dishNames(facts []report.Fact, meal consumption.MealType) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range facts {
		if f.Meal != meal || seen[f.Dish] {
			continue
		}
		seen[f.Dish] = true
		out = append(out, f.Dish)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

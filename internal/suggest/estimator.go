package suggest

import (
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
)

// MinQuantityKg is the floor every estimate respects: the kitchen never
// plans less than half a kilogram of a dish.
const MinQuantityKg = 0.5

// fallbackMaxKg bounds the uniform draw for dishes with no history.
const fallbackMaxKg = 1.5

// Estimator plans the per-day quantity (kg) for one dish in one meal
// slot. Implementations never fail on unknown dishes; they degrade to a
// documented fallback. The result is always >= MinQuantityKg.
type Estimator interface {
	Estimate(dish string, meal consumption.MealType, date time.Time) float64
}

// quantityRange is the per-day-normalized spread of one dish's history
// within one expanded table.
type quantityRange struct {
	median float64
	min    float64
	max    float64
}

// rangeFor normalizes each matching bucket's total to a per-day quantity
// (inclusive day count) and summarizes the spread. A zero value means no
// history for the pair.
func rangeFor(facts []report.Fact, dish string, meal consumption.MealType) quantityRange {
	var daily []float64
	for _, f := range facts {
		if f.Meal != meal || f.Dish != dish {
			continue
		}
		days := f.Days()
		if days <= 0 {
			continue
		}
		daily = append(daily, f.QuantityKg/float64(days))
	}
	if len(daily) == 0 {
		return quantityRange{}
	}

	sort.Float64s(daily)
	return quantityRange{
		median: stat.Quantile(0.5, stat.LinInterp, daily, nil),
		min:    floats.Min(daily),
		max:    floats.Max(daily),
	}
}

// HistoryEstimator is the rule-based strategy: it samples within the
// historical per-day quantity range of the dish. Holiday handling is the
// Composer's concern, not the estimator's.
type HistoryEstimator struct {
	most  []report.Fact
	least []report.Fact
	scale float64
	rng   *rand.Rand
}

// NewHistoryEstimator builds the rule-based estimator over request-scoped
// copies of the expanded tables. The rng must be injected so tests can
// seed it.
func NewHistoryEstimator(most, least []report.Fact, rng *rand.Rand) *HistoryEstimator {
	return &HistoryEstimator{most: most, least: least, scale: 1.0, rng: rng}
}

// SetScale applies an optional multiplicative factor to range-based
// estimates. The no-history fallback is never scaled.
func (e *HistoryEstimator) SetScale(scale float64) {
	e.scale = scale
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// estimate returns the raw draw and whether any historical signal backed
// it. The learned strategy consults the signal flag to decide when to
// trust its model instead.
func (e *HistoryEstimator) estimate(dish string, meal consumption.MealType) (float64, bool) {
	mostRange := rangeFor(e.most, dish, meal)
	leastRange := rangeFor(e.least, dish, meal)

	switch {
	case mostRange.median == 0 && leastRange.median == 0:
		return uniform(e.rng, MinQuantityKg, fallbackMaxKg), false
	case mostRange.median == 0:
		return uniform(e.rng, leastRange.min, leastRange.max) * e.scale, true
	case leastRange.median == 0:
		return uniform(e.rng, mostRange.min, mostRange.max) * e.scale, true
	}

	lo := (mostRange.min + leastRange.min) / 2
	hi := (mostRange.max + leastRange.max) / 2
	return uniform(e.rng, lo, hi) * e.scale, true
}

func (e *HistoryEstimator) Estimate(dish string, meal consumption.MealType, _ time.Time) float64 {
	q, _ := e.estimate(dish, meal)
	if q < MinQuantityKg {
		return MinQuantityKg
	}
	return q
}

package suggest

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/holiday"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
)

// ErrInsufficientHistory is returned when the expanded tables cannot
// support a regression fit. Callers fall back to the rule-based strategy.
var ErrInsufficientHistory = errors.New("not enough history to train quantity model")

// labelEncoder maps category labels to integer codes. Code assigns a new
// code when the label was never seen; this insert-if-absent behavior is
// part of the estimator contract so unseen dishes at inference time never
// fail.
type labelEncoder struct {
	codes map[string]int
}

func newLabelEncoder() *labelEncoder {
	return &labelEncoder{codes: make(map[string]int)}
}

func (e *labelEncoder) Code(label string) int {
	if code, ok := e.codes[label]; ok {
		return code
	}
	code := len(e.codes)
	e.codes[label] = code
	return code
}

const regressionFeatures = 5 // intercept, dish code, meal code, duration, holiday flag

// RegressionEstimator is the learned strategy: a least-squares fit of
// daily quantity on (dish code, meal code, bucket duration, holiday
// flag). When the rule-based estimator has real historical signal for a
// pair, that estimate is preferred over the model's prediction.
type RegressionEstimator struct {
	history  *HistoryEstimator
	dishes   *labelEncoder
	meals    *labelEncoder
	coef     []float64
	holidays holiday.Calendar
}

// TrainRegression fits the model over the union of the most and least
// expanded tables. holidays must already be filtered to qualifying
// periods. Training fails fast on a degenerate table.
func TrainRegression(most, least []report.Fact, holidays holiday.Calendar, history *HistoryEstimator) (*RegressionEstimator, error) {
	rows := make([]report.Fact, 0, len(most)+len(least))
	rows = append(rows, most...)
	rows = append(rows, least...)

	dishes := newLabelEncoder()
	meals := newLabelEncoder()
	for _, meal := range consumption.MealOrder {
		meals.Code(string(meal))
	}

	var (
		features []float64
		targets  []float64
	)
	for _, f := range rows {
		days := f.Days()
		if days <= 0 {
			continue
		}
		holidayFlag := 0.0
		if _, ok := holidays.Find(f.Start); ok {
			holidayFlag = 1.0
		}
		features = append(features,
			1,
			float64(dishes.Code(f.Dish)),
			float64(meals.Code(string(f.Meal))),
			float64(days),
			holidayFlag,
		)
		targets = append(targets, f.QuantityKg/float64(days))
	}

	n := len(targets)
	if n < regressionFeatures {
		return nil, ErrInsufficientHistory
	}

	x := mat.NewDense(n, regressionFeatures, features)
	y := mat.NewVecDense(n, targets)

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("fit quantity model: %w", err)
	}

	coef := make([]float64, regressionFeatures)
	for i := range coef {
		coef[i] = beta.AtVec(i)
	}

	return &RegressionEstimator{
		history:  history,
		dishes:   dishes,
		meals:    meals,
		coef:     coef,
		holidays: holidays,
	}, nil
}

func (e *RegressionEstimator) Estimate(dish string, meal consumption.MealType, date time.Time) float64 {
	if q, hasSignal := e.history.estimate(dish, meal); hasSignal && q > 0 {
		if q < MinQuantityKg {
			return MinQuantityKg
		}
		return q
	}

	holidayFlag := 0.0
	if _, ok := e.holidays.Find(date); ok {
		holidayFlag = 1.0
	}

	features := []float64{
		1,
		float64(e.dishes.Code(dish)),
		float64(e.meals.Code(string(meal))),
		1, // planning horizon of a single day
		holidayFlag,
	}

	var q float64
	for i, c := range e.coef {
		q += c * features[i]
	}
	if q < MinQuantityKg {
		return MinQuantityKg
	}
	return q
}

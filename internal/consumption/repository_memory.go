package consumption

import (
	"context"
	"sort"
	"time"
)

// InMemoryRepository backs tests and local demos.
type InMemoryRepository struct {
	records []Record
	waste   []WasteRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) SaveRecord(ctx context.Context, rec *Record) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *InMemoryRepository) SaveRecords(ctx context.Context, recs []Record) error {
	r.records = append(r.records, recs...)
	return nil
}

func (r *InMemoryRepository) ListRecords(ctx context.Context, start, end time.Time) ([]Record, error) {
	var out []Record
	for _, rec := range r.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAllRecords(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *InMemoryRepository) SaveWaste(ctx context.Context, rec *WasteRecord) error {
	r.waste = append(r.waste, *rec)
	return nil
}

func (r *InMemoryRepository) WasteTotals(ctx context.Context, start, end time.Time) ([]WasteTotal, error) {
	totals := make(map[string]float64)
	for _, w := range r.waste {
		if !w.Date.Before(start) && !w.Date.After(end) {
			totals[w.Dish] += w.QuantityKg
		}
	}

	out := make([]WasteTotal, 0, len(totals))
	for dish, kg := range totals {
		out = append(out, WasteTotal{Dish: dish, TotalKg: kg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalKg > out[j].TotalKg })
	return out, nil
}

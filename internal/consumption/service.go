package consumption

import (
	"context"
	"errors"
	"io"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stores a single served-dish observation.
func (s *Service) Record(ctx context.Context, rec *Record) error {
	if rec.Dish == "" {
		return errors.New("dish_name is required")
	}
	if rec.QuantityKg < 0 {
		return errors.New("quantity_kg must be non-negative")
	}
	return s.repo.SaveRecord(ctx, rec)
}

// ImportCSV ingests the per-day fact CSV and stores every parsed portion
// as a normalized record. Returns the number of records stored.
func (s *Service) ImportCSV(ctx context.Context, file io.Reader, recordedBy string) (int, error) {
	days, err := ReadDayRecords(file)
	if err != nil {
		return 0, err
	}

	var records []Record
	for _, day := range days {
		records = append(records, day.Records(recordedBy)...)
	}
	if len(records) == 0 {
		return 0, errors.New("no valid rows in uploaded file")
	}

	if err := s.repo.SaveRecords(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// History loads all stored records and regroups them into per-day rows
// for the aggregation pipeline. The returned slice is owned by the caller;
// nothing here is shared across requests.
func (s *Service) History(ctx context.Context) ([]DayRecord, error) {
	records, err := s.repo.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return DayRecordsFromRecords(records), nil
}

// RecordWaste stores a leftover observation.
func (s *Service) RecordWaste(ctx context.Context, rec *WasteRecord) error {
	if rec.Dish == "" {
		return errors.New("dish_name is required")
	}
	if rec.QuantityKg < 0 {
		return errors.New("quantity_kg must be non-negative")
	}
	return s.repo.SaveWaste(ctx, rec)
}

// WasteReport returns per-dish leftover totals in the window.
func (s *Service) WasteReport(ctx context.Context, start, end time.Time) ([]WasteTotal, error) {
	if end.Before(start) {
		return nil, errors.New("end_date before start_date")
	}
	return s.repo.WasteTotals(ctx, start, end)
}

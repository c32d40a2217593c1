package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// HistorySource provides the per-day rows the aggregator runs on.
type HistorySource interface {
	History(ctx context.Context) ([]consumption.DayRecord, error)
}

// ArtifactStore uploads generated report artifacts and returns a public
// URL. Optional; reports still render without one.
type ArtifactStore interface {
	UploadBytes(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// Bundle holds every derived table of one aggregation run. Each run
// builds a fresh bundle; nothing here is shared between requests.
type Bundle struct {
	Weekly       []Summary
	Monthly      []MonthlySummary
	Most         []Fact
	Least        []Fact
	MostMonthly  []MonthlyFact
	LeastMonthly []MonthlyFact
}

type Service struct {
	history HistorySource
	store   ArtifactStore
}

func NewService(history HistorySource, store ArtifactStore) *Service {
	return &Service{history: history, store: store}
}

var ErrNoHistory = errors.New("no consumption history recorded")

// Build runs the full aggregation pipeline: day rows -> weekly/monthly
// summaries -> expanded fact tables.
func (s *Service) Build(ctx context.Context) (*Bundle, error) {
	days, err := s.history.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrNoHistory
	}
	return BuildBundle(days)
}

// BuildBundle derives every summary and fact table from day rows.
func BuildBundle(days []consumption.DayRecord) (*Bundle, error) {
	weekly, err := Weekly(days)
	if err != nil {
		return nil, err
	}
	monthly := Monthly(days)

	return &Bundle{
		Weekly:       weekly,
		Monthly:      monthly,
		Most:         ExpandMost(weekly),
		Least:        ExpandLeast(weekly),
		MostMonthly:  ExpandMostMonthly(monthly),
		LeastMonthly: ExpandLeastMonthly(monthly),
	}, nil
}

// WeeklyConsumptionPDF renders the admin report for a date window and
// uploads it when an artifact store is configured. Returns the PDF bytes
// and the uploaded URL (empty without a store).
func (s *Service) WeeklyConsumptionPDF(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	if end.Before(start) {
		return nil, "", errors.New("end_date before start_date")
	}

	bundle, err := s.Build(ctx)
	if err != nil {
		return nil, "", err
	}

	title := fmt.Sprintf("Weekly Consumption Report for %s to %s",
		start.Format(consumption.DateLayout), end.Format(consumption.DateLayout))
	data := WeeklyExtremes(bundle.Most, bundle.Least, start, end)

	pdfBytes, err := RenderPDF(title, data)
	if err != nil {
		return nil, "", err
	}

	key := fmt.Sprintf("reports/weekly_consumption_report_from(%s)to(%s).pdf",
		start.Format("02_01_2006"), end.Format("02_01_2006"))
	url := s.upload(ctx, key, pdfBytes)
	return pdfBytes, url, nil
}

// MonthlyConsumptionPDF is the calendar-month variant.
func (s *Service) MonthlyConsumptionPDF(ctx context.Context, monthYear string) ([]byte, string, error) {
	if monthYear == "" {
		return nil, "", errors.New("month_year is required")
	}

	bundle, err := s.Build(ctx)
	if err != nil {
		return nil, "", err
	}

	title := fmt.Sprintf("Monthly Consumption Report for %s", monthYear)
	data := MonthlyExtremes(bundle.MostMonthly, bundle.LeastMonthly, monthYear)

	pdfBytes, err := RenderPDF(title, data)
	if err != nil {
		return nil, "", err
	}

	url := s.upload(ctx, fmt.Sprintf("reports/monthly_consumption_report_%s.pdf", monthYear), pdfBytes)
	return pdfBytes, url, nil
}

func (s *Service) upload(ctx context.Context, key string, data []byte) string {
	if s.store == nil {
		return ""
	}
	url, err := s.store.UploadBytes(ctx, key, "application/pdf", data)
	if err != nil {
		// report still renders; losing the archived copy is not fatal
		log.Printf("[REPORT] artifact upload failed for %s: %v", key, err)
		return ""
	}
	return url
}

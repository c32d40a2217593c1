package holiday

import "context"

// Repository defines the holiday schedule's data-access contract.
type Repository interface {
	Save(ctx context.Context, p *Period, createdBy string) error
	ListByYear(ctx context.Context, year int) (Calendar, error)
	ListAll(ctx context.Context) (Calendar, error)
}

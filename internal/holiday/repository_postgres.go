package holiday

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, p *Period, createdBy string) error {
	var by interface{}
	if createdBy != "" {
		by = createdBy
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO holiday_schedule (name, start_date, end_date, created_by)
		VALUES ($1, $2, $3, $4)
	`, p.Name, p.Start, p.End, by)
	return err
}

func (r *PostgresRepository) ListByYear(ctx context.Context, year int) (Calendar, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, start_date, end_date
		FROM holiday_schedule
		WHERE EXTRACT(YEAR FROM start_date) = $1
		ORDER BY start_date
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCalendar(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context) (Calendar, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, start_date, end_date
		FROM holiday_schedule
		ORDER BY start_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCalendar(rows)
}

func scanCalendar(rows pgx.Rows) (Calendar, error) {
	var cal Calendar
	for rows.Next() {
		var p Period
		if err := rows.Scan(&p.Name, &p.Start, &p.End); err != nil {
			return nil, err
		}
		cal = append(cal, p)
	}
	return cal, rows.Err()
}

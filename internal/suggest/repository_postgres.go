package suggest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

var ErrRunNotFound = errors.New("suggestion run not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SaveRun(ctx context.Context, run *Run) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO suggestion_runs (id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4)
	`, run.ID, run.StartDate, run.EndDate, run.CreatedAt)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(run.Entries))
	for i, e := range run.Entries {
		rows = append(rows, []interface{}{
			run.ID, i, e.Date, string(e.Meal), e.Dish, e.QuantityKg, e.Holiday,
		})
	}
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"suggested_menus"},
		[]string{"run_id", "position", "date", "meal_type", "dish_name", "quantity_kg", "is_holiday"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetRun(ctx context.Context, id string) (*Run, error) {
	run := &Run{ID: id}

	err := r.db.QueryRow(ctx, `
		SELECT start_date, end_date, created_at
		FROM suggestion_runs
		WHERE id = $1
	`, id).Scan(&run.StartDate, &run.EndDate, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	return r.loadEntries(ctx, run)
}

func (r *PostgresRepository) LatestRun(ctx context.Context) (*Run, error) {
	run := &Run{}

	err := r.db.QueryRow(ctx, `
		SELECT id, start_date, end_date, created_at
		FROM suggestion_runs
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&run.ID, &run.StartDate, &run.EndDate, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	return r.loadEntries(ctx, run)
}

func (r *PostgresRepository) loadEntries(ctx context.Context, run *Run) (*Run, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date, meal_type, dish_name, quantity_kg, is_holiday
		FROM suggested_menus
		WHERE run_id = $1
		ORDER BY position
	`, run.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e    Entry
			meal string
		)
		if err := rows.Scan(&e.Date, &meal, &e.Dish, &e.QuantityKg, &e.Holiday); err != nil {
			return nil, err
		}
		e.Meal = consumption.MealType(meal)
		run.Entries = append(run.Entries, e)
	}
	return run, rows.Err()
}

package menu

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) AddEntries(ctx context.Context, entries []PlanEntry) error {
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.Date, string(e.Meal), e.Dish, e.QuantityKg,
		})
	}

	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"menu_plan"},
		[]string{"date", "meal_type", "dish_name", "quantity_kg"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *PostgresRepository) ListRange(ctx context.Context, start, end time.Time) ([]PlanEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date, meal_type, dish_name, quantity_kg
		FROM menu_plan
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlanEntry
	for rows.Next() {
		var (
			e    PlanEntry
			meal string
		)
		if err := rows.Scan(&e.Date, &meal, &e.Dish, &e.QuantityKg); err != nil {
			return nil, err
		}
		e.Meal = consumption.MealType(meal)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) SaveFeedback(ctx context.Context, fb *Feedback) error {
	var userID interface{}
	if fb.UserID != "" {
		userID = fb.UserID
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO feedback (student_id, meal_date, meal_type, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, fb.MealDate, string(fb.Meal), fb.Rating, fb.Comment)
	return err
}

package consumption

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CONSUMPTION RECORDS
// --------------------------------------------------

func (r *PostgresRepository) SaveRecord(ctx context.Context, rec *Record) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO consumption_records (date, meal_type, dish_name, quantity_kg, recorded_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`, rec.Date, string(rec.Meal), rec.Dish, rec.QuantityKg, rec.RecordedBy)
	return err
}

func (r *PostgresRepository) SaveRecords(ctx context.Context, recs []Record) error {
	rows := make([][]interface{}, 0, len(recs))
	for _, rec := range recs {
		var recordedBy interface{}
		if rec.RecordedBy != "" {
			recordedBy = rec.RecordedBy
		}
		rows = append(rows, []interface{}{
			rec.Date, string(rec.Meal), rec.Dish, rec.QuantityKg, recordedBy,
		})
	}

	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"consumption_records"},
		[]string{"date", "meal_type", "dish_name", "quantity_kg", "recorded_by"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *PostgresRepository) ListRecords(ctx context.Context, start, end time.Time) ([]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date, meal_type, dish_name, quantity_kg, COALESCE(recorded_by::text, '')
		FROM consumption_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *PostgresRepository) ListAllRecords(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date, meal_type, dish_name, quantity_kg, COALESCE(recorded_by::text, '')
		FROM consumption_records
		ORDER BY date, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		var (
			rec  Record
			meal string
		)
		if err := rows.Scan(&rec.Date, &meal, &rec.Dish, &rec.QuantityKg, &rec.RecordedBy); err != nil {
			return nil, err
		}
		rec.Meal = MealType(meal)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// WASTE RECORDS
// --------------------------------------------------

func (r *PostgresRepository) SaveWaste(ctx context.Context, rec *WasteRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO waste_records (date, meal_type, dish_name, quantity_kg, recorded_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`, rec.Date, string(rec.Meal), rec.Dish, rec.QuantityKg, rec.RecordedBy)
	return err
}

func (r *PostgresRepository) WasteTotals(ctx context.Context, start, end time.Time) ([]WasteTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT dish_name, SUM(quantity_kg) AS total_waste
		FROM waste_records
		WHERE date BETWEEN $1 AND $2
		GROUP BY dish_name
		ORDER BY total_waste DESC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WasteTotal
	for rows.Next() {
		var wt WasteTotal
		if err := rows.Scan(&wt.Dish, &wt.TotalKg); err != nil {
			return nil, err
		}
		out = append(out, wt)
	}
	return out, rows.Err()
}

package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STUDENT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CONSUMPTION + WASTE RECORDS
	// -------------------------------
	consumptionSQL := `
		CREATE TABLE IF NOT EXISTS consumption_records (
			id SERIAL PRIMARY KEY,
			date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			dish_name VARCHAR(255) NOT NULL,
			quantity_kg DOUBLE PRECISION NOT NULL,
			recorded_by UUID NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, consumptionSQL); err != nil {
		return err
	}

	consumptionIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_consumption_date
		ON consumption_records (date, meal_type)
	`
	if _, err := db.Exec(ctx, consumptionIndexSQL); err != nil {
		return err
	}

	wasteSQL := `
		CREATE TABLE IF NOT EXISTS waste_records (
			id SERIAL PRIMARY KEY,
			date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			dish_name VARCHAR(255) NOT NULL,
			quantity_kg DOUBLE PRECISION NOT NULL,
			recorded_by UUID NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, wasteSQL); err != nil {
		return err
	}

	// -------------------------------
	// HOLIDAY SCHEDULE
	// -------------------------------
	holidaySQL := `
		CREATE TABLE IF NOT EXISTS holiday_schedule (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			created_by UUID NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, holidaySQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU PLAN + FEEDBACK
	// -------------------------------
	menuPlanSQL := `
		CREATE TABLE IF NOT EXISTS menu_plan (
			id SERIAL PRIMARY KEY,
			date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			dish_name VARCHAR(255) NOT NULL,
			quantity_kg DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuPlanSQL); err != nil {
		return err
	}

	feedbackSQL := `
		CREATE TABLE IF NOT EXISTS feedback (
			id SERIAL PRIMARY KEY,
			student_id UUID NOT NULL,
			meal_date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			rating INT NOT NULL,
			comment TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (student_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, feedbackSQL); err != nil {
		return err
	}

	// -------------------------------
	// SUGGESTION RUNS
	// -------------------------------
	suggestionRunsSQL := `
		CREATE TABLE IF NOT EXISTS suggestion_runs (
			id UUID PRIMARY KEY,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, suggestionRunsSQL); err != nil {
		return err
	}

	suggestedMenusSQL := `
		CREATE TABLE IF NOT EXISTS suggested_menus (
			id SERIAL PRIMARY KEY,
			run_id UUID NOT NULL,
			position INT NOT NULL,
			date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			dish_name VARCHAR(255) NOT NULL,
			quantity_kg DOUBLE PRECISION NOT NULL,
			is_holiday BOOLEAN NOT NULL DEFAULT FALSE,
			FOREIGN KEY (run_id) REFERENCES suggestion_runs(id)
		)
	`
	if _, err := db.Exec(ctx, suggestedMenusSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

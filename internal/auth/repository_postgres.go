package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	err := row.Scan(&exists)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, password, role
		FROM users WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role); err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *PostgresUserRepository) FindByID(id string) (*User, error) {
	query := `
		SELECT id, name, email, password, role
		FROM users WHERE id=$1
	`
	row := r.db.QueryRow(context.Background(), query, id)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role); err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *PostgresUserRepository) ListByRole(role string) ([]*User, error) {
	query := `
		SELECT id, name, email, role
		FROM users
	`
	args := []interface{}{}
	if role != "" {
		query += ` WHERE role=$1`
		args = append(args, role)
	}
	query += ` ORDER BY email`

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) Update(user *User) error {
	query := `
		UPDATE users
		SET name=$2, email=$3, password=$4, role=$5
		WHERE id=$1
	`
	tag, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Delete(id string) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) HasDependencies(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM holiday_schedule WHERE created_by=$1)
		    OR EXISTS (SELECT 1 FROM consumption_records WHERE recorded_by=$1)
		    OR EXISTS (SELECT 1 FROM waste_records WHERE recorded_by=$1)
		    OR EXISTS (SELECT 1 FROM feedback WHERE student_id=$1)
	`
	var has bool
	if err := r.db.QueryRow(context.Background(), query, id).Scan(&has); err != nil {
		return false, err
	}
	return has, nil
}

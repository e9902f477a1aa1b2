package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user and fills in the generated id and registration
// timestamp. A duplicate login id surfaces as service.ErrLoginTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (login_id, name, password_hash, email)
		VALUES ($1, $2, $3, $4) RETURNING id, registered_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.LoginID,
		user.Name,
		user.PasswordHash,
		user.Email,
	).Scan(&user.ID, &user.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrLoginTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByLoginID returns the user with the given login id or
// service.ErrUserNotFound.
func (r *UserRepository) GetByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT
			id,
			login_id,
			name,
			password_hash,
			COALESCE(email, ''),
			registered_at
		FROM users
		WHERE login_id = $1;
	`
	err := r.db.QueryRow(ctx, query, loginID).Scan(
		&user.ID,
		&user.LoginID,
		&user.Name,
		&user.PasswordHash,
		&user.Email,
		&user.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by login id: %w", err)
	}
	return user, nil
}

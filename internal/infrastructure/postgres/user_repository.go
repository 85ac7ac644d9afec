package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/domain"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo persistencia de cuentas de acceso a la API.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserta el usuario; ErrDuplicate si el email ya existe.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	const query = `
	INSERT INTO users (username, email, password_hash, role, status, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	RETURNING id, created_at`

	created := *user
	err := r.pool.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// FindByEmail devuelve nil, nil si el email no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
	SELECT u.id, u.username, u.email, u.password_hash, u.role, u.status, u.created_at
	FROM users u WHERE u.email = $1`

	var u entity.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

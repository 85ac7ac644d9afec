package repository

import (
	"context"

	"github.com/jhoicas/analytics-api/internal/domain/entity"
)

// UserRepository define la persistencia de cuentas de acceso a la API.
type UserRepository interface {
	// Create persiste un usuario nuevo y devuelve la entidad con ID asignado.
	// Devuelve domain.ErrDuplicate si el email ya existe.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByEmail devuelve nil, nil si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

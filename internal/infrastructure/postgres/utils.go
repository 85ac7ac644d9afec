package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// codeUniqueViolation SQLSTATE de violación de constraint único. El único
// constraint que el dominio traduce a un error propio es users.email
// (registro duplicado); sales_metrics.date se resuelve con ON CONFLICT
// en la escritura.
const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

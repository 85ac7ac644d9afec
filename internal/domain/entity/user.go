package entity

import "time"

// Roles de usuario de la API.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User cuenta de acceso a la API (no confundir con Customer, que es un
// cliente de la tienda). Email es único.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string // "user" | "admin"
	Status       string // "active" | "suspended"
	CreatedAt    time.Time
}

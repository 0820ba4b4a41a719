package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleCreator    = "creator"
	RoleRespondent = "respondent"
)

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCreator || role == RoleRespondent
}

// User representa una cuenta del sistema. Se crea en aprovisionamiento
// (registro por un admin o bootstrap inicial) y los flujos normales solo la leen.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca se serializa ni se loguea
	Role         string // admin, creator, respondent
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import "time"

// Company representa una organización cuyos empleados participan en encuestas.
type Company struct {
	ID        int64
	Name      string // único
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

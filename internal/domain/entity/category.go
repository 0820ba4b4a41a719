package entity

import "time"

// Category agrupa preguntas por tema (clima laboral, liderazgo, etc.).
type Category struct {
	ID          int64
	Name        string // único
	Description string
	CreatedAt   time.Time
}

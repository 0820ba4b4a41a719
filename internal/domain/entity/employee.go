package entity

import "time"

// Employee representa un empleado de una Company. La integridad de CompanyID
// la garantiza la foreign key en la base; aquí no se re-valida.
type Employee struct {
	ID        int64
	CompanyID int64
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

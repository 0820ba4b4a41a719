package repository

import "github.com/tu-usuario/survey-pro/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Employee, error)
}

package repository

import "github.com/tu-usuario/survey-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}

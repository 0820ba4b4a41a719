package repository

import "github.com/tu-usuario/survey-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El store de credenciales es de solo lectura para los flujos normales;
// Create existe únicamente para aprovisionamiento.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}

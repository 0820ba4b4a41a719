package repository

import "github.com/tu-usuario/survey-pro/internal/domain/entity"

// QuestionRepository define el puerto de persistencia para Question (DIP).
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id int64) (*entity.Question, error)
	List(limit, offset int) ([]*entity.Question, error)
	ListByCategory(categoryID int64, limit, offset int) ([]*entity.Question, error)
}

package repository

import "github.com/tu-usuario/survey-pro/internal/domain/entity"

// SurveyRepository define el puerto de persistencia para Survey (DIP).
// Create + AddQuestion se usan juntos dentro de una transacción (ver TxRunner
// en application) para que encuesta y asociaciones queden atómicas.
type SurveyRepository interface {
	Create(survey *entity.Survey) error
	AddQuestion(surveyID, questionID int64, position int) error
	GetByID(id int64) (*entity.Survey, error)
	List(limit, offset int) ([]*entity.Survey, error)
	ListQuestions(surveyID int64) ([]*entity.Question, error)
}

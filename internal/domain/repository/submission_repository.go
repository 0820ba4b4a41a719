package repository

import "github.com/tu-usuario/survey-pro/internal/domain/entity"

// SubmissionRepository define el puerto de persistencia para envíos de
// respuestas. Create + CreateAnswer se invocan dentro de una transacción:
// un envío parcial nunca debe quedar visible.
type SubmissionRepository interface {
	Create(submission *entity.Submission) error
	CreateAnswer(answer *entity.Answer) error
	CountBySurvey(surveyID int64) (int64, error)
}

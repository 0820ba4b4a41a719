package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

// SubmissionRepo implementación del puerto SubmissionRepository sobre PostgreSQL.
// Se usa atado a una transacción (TxRunner) para que envío y respuestas queden
// atómicos.
type SubmissionRepo struct {
	store *Store
}

// NewSubmissionRepository construye el adaptador de persistencia para envíos.
func NewSubmissionRepository(store *Store) *SubmissionRepo {
	return &SubmissionRepo{store: store}
}

// Create persiste la cabecera del envío y asigna el id generado. Un survey_id
// o respondent_id inexistente viola la foreign key y sube como error de store.
func (r *SubmissionRepo) Create(submission *entity.Submission) error {
	query := `
		INSERT INTO submissions (uuid, survey_id, respondent_id, submitted_at)
		VALUES ($1, $2, $3, $4)`
	id, err := r.store.Insert(context.Background(), query,
		submission.UUID, submission.SurveyID, submission.RespondentID, submission.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	submission.ID = id
	return nil
}

// CreateAnswer persiste una respuesta individual del envío.
func (r *SubmissionRepo) CreateAnswer(answer *entity.Answer) error {
	query := `
		INSERT INTO answers (submission_id, question_id, value)
		VALUES ($1, $2, $3)`
	id, err := r.store.Insert(context.Background(), query,
		answer.SubmissionID, answer.QuestionID, answer.Value,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	answer.ID = id
	return nil
}

// CountBySurvey cuenta los envíos de una encuesta.
func (r *SubmissionRepo) CountBySurvey(surveyID int64) (int64, error) {
	var n int64
	err := r.store.Get(context.Background(),
		`SELECT COUNT(*) FROM submissions WHERE survey_id = $1`, surveyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

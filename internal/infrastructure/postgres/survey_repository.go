package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

var _ repository.SurveyRepository = (*SurveyRepo)(nil)

// SurveyRepo implementación del puerto SurveyRepository sobre PostgreSQL.
// Construido sobre Store funciona igual atado al pool o a una transacción
// (ver TxRunner).
type SurveyRepo struct {
	store *Store
}

// NewSurveyRepository construye el adaptador de persistencia para encuestas.
func NewSurveyRepository(store *Store) *SurveyRepo {
	return &SurveyRepo{store: store}
}

// Create persiste la cabecera de una encuesta y asigna el id generado.
func (r *SurveyRepo) Create(survey *entity.Survey) error {
	query := `
		INSERT INTO surveys (title, description, created_by, created_at)
		VALUES ($1, $2, $3, $4)`
	id, err := r.store.Insert(context.Background(), query,
		survey.Title, survey.Description, survey.CreatedBy, survey.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert survey: %w", err)
	}
	survey.ID = id
	return nil
}

// AddQuestion asocia una pregunta existente a la encuesta. La asociación es
// idempotente: repetir la misma pregunta no duplica la fila.
func (r *SurveyRepo) AddQuestion(surveyID, questionID int64, position int) error {
	query := `
		INSERT INTO survey_questions (survey_id, question_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (survey_id, question_id) DO NOTHING`
	if _, err := r.store.Run(context.Background(), query, surveyID, questionID, position); err != nil {
		return fmt.Errorf("add survey question: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una encuesta. Devuelve (nil, nil) si no existe.
func (r *SurveyRepo) GetByID(id int64) (*entity.Survey, error) {
	query := `
		SELECT id, title, description, created_by, created_at
		FROM surveys WHERE id = $1`
	var s entity.Survey
	err := r.store.Get(context.Background(), query, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get survey: %w", err)
	}
	return &s, nil
}

// List devuelve encuestas con paginación.
func (r *SurveyRepo) List(limit, offset int) ([]*entity.Survey, error) {
	query := `
		SELECT id, title, description, created_by, created_at
		FROM surveys ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.store.All(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	defer rows.Close()
	var list []*entity.Survey
	for rows.Next() {
		var s entity.Survey
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan survey: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListQuestions devuelve las preguntas de la encuesta en su posición declarada.
func (r *SurveyRepo) ListQuestions(surveyID int64) ([]*entity.Question, error) {
	query := `
		SELECT q.id, q.category_id, q.text, q.kind, q.options, q.created_at
		FROM survey_questions sq
		JOIN questions q ON q.id = sq.question_id
		WHERE sq.survey_id = $1
		ORDER BY sq.position`
	rows, err := r.store.All(context.Background(), query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("list survey questions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Question
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.CategoryID, &q.Text, &q.Kind, &q.Options, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan survey question: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

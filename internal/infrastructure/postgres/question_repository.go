package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

var _ repository.QuestionRepository = (*QuestionRepo)(nil)

// QuestionRepo implementación del puerto QuestionRepository sobre PostgreSQL.
type QuestionRepo struct {
	store *Store
}

// NewQuestionRepository construye el adaptador de persistencia para preguntas.
func NewQuestionRepository(store *Store) *QuestionRepo {
	return &QuestionRepo{store: store}
}

// Create persiste una pregunta y asigna el id generado. Un category_id
// inexistente viola la foreign key y sube como error de store.
func (r *QuestionRepo) Create(question *entity.Question) error {
	query := `
		INSERT INTO questions (category_id, text, kind, options, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	id, err := r.store.Insert(context.Background(), query,
		question.CategoryID, question.Text, question.Kind, question.Options, question.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	question.ID = id
	return nil
}

// GetByID obtiene una pregunta por id. Devuelve (nil, nil) si no existe.
func (r *QuestionRepo) GetByID(id int64) (*entity.Question, error) {
	query := `
		SELECT id, category_id, text, kind, options, created_at
		FROM questions WHERE id = $1`
	var q entity.Question
	err := r.store.Get(context.Background(), query, id).Scan(
		&q.ID, &q.CategoryID, &q.Text, &q.Kind, &q.Options, &q.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

// List devuelve preguntas con paginación.
func (r *QuestionRepo) List(limit, offset int) ([]*entity.Question, error) {
	query := `
		SELECT id, category_id, text, kind, options, created_at
		FROM questions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryQuestions(query, limit, offset)
}

// ListByCategory devuelve las preguntas de una categoría con paginación.
func (r *QuestionRepo) ListByCategory(categoryID int64, limit, offset int) ([]*entity.Question, error) {
	query := `
		SELECT id, category_id, text, kind, options, created_at
		FROM questions WHERE category_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryQuestions(query, categoryID, limit, offset)
}

func (r *QuestionRepo) queryQuestions(query string, args ...any) ([]*entity.Question, error) {
	rows, err := r.store.All(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Question
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.CategoryID, &q.Text, &q.Kind, &q.Options, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

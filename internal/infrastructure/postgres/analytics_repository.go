package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para estadísticas de encuestas.
type AnalyticsRepo struct {
	store *Store
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(store *Store) *AnalyticsRepo {
	return &AnalyticsRepo{store: store}
}

// GetSurveyStats agrega por pregunta el número de respuestas y, para preguntas
// de tipo scale, el promedio del valor numérico como NUMERIC (escaneado a
// decimal vía el codec registrado en el pool). Devuelve (nil, nil) si la
// encuesta no existe.
func (r *AnalyticsRepo) GetSurveyStats(ctx context.Context, surveyID int64) (*repository.SurveyStatsResult, error) {
	out := &repository.SurveyStatsResult{SurveyID: surveyID}

	const headQuery = `
		SELECT s.title,
		       (SELECT COUNT(*) FROM submissions su WHERE su.survey_id = s.id) AS submission_count
		FROM surveys s WHERE s.id = $1`
	err := r.store.Get(ctx, headQuery, surveyID).Scan(&out.Title, &out.SubmissionCount)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("analytics.GetSurveyStats head: %w", err)
	}

	const query = `
	SELECT
	    q.id                                                                 AS question_id,
	    q.text                                                               AS question_text,
	    q.kind                                                               AS kind,
	    COUNT(a.id)                                                          AS answer_count,
	    CASE WHEN q.kind = 'scale'
	         THEN AVG(NULLIF(a.value, '')::NUMERIC)
	         ELSE NULL
	    END                                                                  AS average_scale
	FROM survey_questions sq
	JOIN questions q ON q.id = sq.question_id
	LEFT JOIN submissions su ON su.survey_id = sq.survey_id
	LEFT JOIN answers a ON a.submission_id = su.id AND a.question_id = q.id
	WHERE sq.survey_id = $1
	GROUP BY q.id, q.text, q.kind, sq.position
	ORDER BY sq.position`

	rows, err := r.store.All(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSurveyStats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row repository.QuestionStatsResult
		if err := rows.Scan(
			&row.QuestionID,
			&row.QuestionText,
			&row.Kind,
			&row.AnswerCount,
			&row.AverageScale,
		); err != nil {
			return nil, fmt.Errorf("analytics scan: %w", err)
		}
		out.Questions = append(out.Questions, row)
	}
	return out, rows.Err()
}

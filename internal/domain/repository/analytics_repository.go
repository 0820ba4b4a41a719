package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// QuestionStatsResult estadísticas agregadas de una pregunta dentro de una encuesta.
// AverageScale solo aplica a preguntas de tipo scale (NULL en SQL → Valid=false).
type QuestionStatsResult struct {
	QuestionID   int64
	QuestionText string
	Kind         string
	AnswerCount  int64
	AverageScale decimal.NullDecimal
}

// SurveyStatsResult resumen de participación de una encuesta.
type SurveyStatsResult struct {
	SurveyID        int64
	Title           string
	SubmissionCount int64
	Questions       []QuestionStatsResult
}

// AnalyticsRepository consultas de solo lectura para estadísticas de encuestas.
type AnalyticsRepository interface {
	GetSurveyStats(ctx context.Context, surveyID int64) (*SurveyStatsResult, error)
}

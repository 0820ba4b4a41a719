package usecase

import (
	"context"

	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// AnalyticsUseCase expone estadísticas agregadas de encuestas.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// GetSurveyStats devuelve participación y agregados por pregunta;
// (nil, nil) si la encuesta no existe.
func (uc *AnalyticsUseCase) GetSurveyStats(ctx context.Context, surveyID int64) (*dto.SurveyStatsResponse, error) {
	stats, err := uc.repo.GetSurveyStats(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, nil
	}
	out := &dto.SurveyStatsResponse{
		SurveyID:        stats.SurveyID,
		Title:           stats.Title,
		SubmissionCount: stats.SubmissionCount,
		Questions:       make([]dto.QuestionStats, 0, len(stats.Questions)),
	}
	for _, q := range stats.Questions {
		item := dto.QuestionStats{
			QuestionID:  q.QuestionID,
			Text:        q.QuestionText,
			Kind:        q.Kind,
			AnswerCount: q.AnswerCount,
		}
		if q.AverageScale.Valid {
			item.AverageScale = q.AverageScale.Decimal.StringFixed(2)
		}
		out.Questions = append(out.Questions, item)
	}
	return out, nil
}

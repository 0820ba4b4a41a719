package usecase

import (
	"context"

	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// SurveyReportGenerator es el puerto de generación del PDF de resultados.
// La implementación vive en infrastructure/pdf.
type SurveyReportGenerator interface {
	GenerateSurveyReportPDF(ctx context.Context, survey *entity.Survey, stats *repository.SurveyStatsResult) ([]byte, error)
}

// ReportUseCase arma el reporte PDF de resultados de una encuesta.
type ReportUseCase struct {
	surveyRepo    repository.SurveyRepository
	analyticsRepo repository.AnalyticsRepository
	generator     SurveyReportGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(surveyRepo repository.SurveyRepository, analyticsRepo repository.AnalyticsRepository, generator SurveyReportGenerator) *ReportUseCase {
	return &ReportUseCase{surveyRepo: surveyRepo, analyticsRepo: analyticsRepo, generator: generator}
}

// Generate devuelve los bytes del PDF; (nil, nil) si la encuesta no existe.
func (uc *ReportUseCase) Generate(ctx context.Context, surveyID int64) ([]byte, error) {
	survey, err := uc.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}
	stats, err := uc.analyticsRepo.GetSurveyStats(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSurveyReportPDF(ctx, survey, stats)
}

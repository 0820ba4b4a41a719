package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// SurveyUseCase aplica reglas de negocio para encuestas.
type SurveyUseCase struct {
	repo     repository.SurveyRepository
	txRunner TxRunner
}

// NewSurveyUseCase construye el caso de uso. repo se usa para lecturas;
// las escrituras van por txRunner para que cabecera y preguntas queden atómicas.
func NewSurveyUseCase(repo repository.SurveyRepository, txRunner TxRunner) *SurveyUseCase {
	return &SurveyUseCase{repo: repo, txRunner: txRunner}
}

// Create crea la encuesta y asocia sus preguntas en una sola transacción.
// Un question_id inexistente viola la foreign key y revierte todo.
func (uc *SurveyUseCase) Create(ctx context.Context, createdBy int64, in dto.CreateSurveyRequest) (*dto.SurveyResponse, error) {
	survey := &entity.Survey{
		Title:       in.Title,
		Description: in.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(surveyRepo repository.SurveyRepository, _ repository.SubmissionRepository) error {
		if err := surveyRepo.Create(survey); err != nil {
			return err
		}
		for i, qid := range in.QuestionIDs {
			if err := surveyRepo.AddQuestion(survey.ID, qid, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSurveyResponse(survey), nil
}

// GetDetail obtiene la encuesta con sus preguntas en orden; (nil, nil) si no existe.
func (uc *SurveyUseCase) GetDetail(id int64) (*dto.SurveyDetailResponse, error) {
	survey, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}
	questions, err := uc.repo.ListQuestions(id)
	if err != nil {
		return nil, err
	}
	out := &dto.SurveyDetailResponse{
		SurveyResponse: *toSurveyResponse(survey),
		Questions:      make([]dto.QuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		out.Questions = append(out.Questions, *toQuestionResponse(q))
	}
	return out, nil
}

// List lista encuestas con paginación.
func (uc *SurveyUseCase) List(limit, offset int) (*dto.SurveyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SurveyResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSurveyResponse(s))
	}
	return &dto.SurveyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSurveyResponse(s *entity.Survey) *dto.SurveyResponse {
	if s == nil {
		return nil
	}
	return &dto.SurveyResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
	}
}

package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/domain"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// QuestionUseCase aplica reglas de negocio para preguntas.
type QuestionUseCase struct {
	repo repository.QuestionRepository
}

// NewQuestionUseCase construye el caso de uso con el puerto de persistencia.
func NewQuestionUseCase(repo repository.QuestionRepository) *QuestionUseCase {
	return &QuestionUseCase{repo: repo}
}

// Create crea una pregunta. kind=choice exige al menos dos opciones; en el
// resto de tipos Options se descarta.
func (uc *QuestionUseCase) Create(in dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if !entity.ValidQuestionKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	options := ""
	if in.Kind == entity.QuestionChoice {
		options = strings.TrimSpace(in.Options)
		if len(strings.Split(options, "|")) < 2 {
			return nil, domain.ErrInvalidInput
		}
	}
	question := &entity.Question{
		CategoryID: in.CategoryID,
		Text:       in.Text,
		Kind:       in.Kind,
		Options:    options,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question), nil
}

// List lista preguntas, opcionalmente filtradas por categoría (categoryID > 0).
func (uc *QuestionUseCase) List(categoryID int64, limit, offset int) (*dto.QuestionListResponse, error) {
	var (
		list []*entity.Question
		err  error
	)
	if categoryID > 0 {
		list, err = uc.repo.ListByCategory(categoryID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuestionResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuestionResponse(q))
	}
	return &dto.QuestionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	if q == nil {
		return nil
	}
	return &dto.QuestionResponse{
		ID:         q.ID,
		CategoryID: q.CategoryID,
		Text:       q.Text,
		Kind:       q.Kind,
		Options:    q.Options,
		CreatedAt:  q.CreatedAt,
	}
}

package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/domain"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// ResponseUseCase registra envíos de respuestas a encuestas.
type ResponseUseCase struct {
	surveyRepo repository.SurveyRepository
	txRunner   TxRunner
}

// NewResponseUseCase construye el caso de uso de envío de respuestas.
func NewResponseUseCase(surveyRepo repository.SurveyRepository, txRunner TxRunner) *ResponseUseCase {
	return &ResponseUseCase{surveyRepo: surveyRepo, txRunner: txRunner}
}

// Submit valida las respuestas contra las preguntas de la encuesta y las
// persiste en una sola transacción (cabecera + N respuestas). Devuelve
// domain.ErrNotFound si la encuesta no existe y domain.ErrInvalidInput si
// alguna respuesta no corresponde a una pregunta de la encuesta o su valor
// no es válido para el tipo de pregunta.
func (uc *ResponseUseCase) Submit(ctx context.Context, surveyID, respondentID int64, in dto.SubmitResponseRequest) (*dto.SubmissionResponse, error) {
	survey, err := uc.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, domain.ErrNotFound
	}
	questions, err := uc.surveyRepo.ListQuestions(surveyID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for _, a := range in.Answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, domain.ErrInvalidInput // pregunta fuera de la encuesta
		}
		if !validAnswerValue(q, a.Value) {
			return nil, domain.ErrInvalidInput
		}
	}

	submission := &entity.Submission{
		UUID:         uuid.New().String(),
		SurveyID:     surveyID,
		RespondentID: respondentID,
		SubmittedAt:  time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(_ repository.SurveyRepository, submissionRepo repository.SubmissionRepository) error {
		if err := submissionRepo.Create(submission); err != nil {
			return err
		}
		for _, a := range in.Answers {
			answer := &entity.Answer{
				SubmissionID: submission.ID,
				QuestionID:   a.QuestionID,
				Value:        a.Value,
			}
			if err := submissionRepo.CreateAnswer(answer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SubmissionResponse{
		SubmissionUUID: submission.UUID,
		SurveyID:       surveyID,
		AnswerCount:    len(in.Answers),
		SubmittedAt:    submission.SubmittedAt,
	}, nil
}

// validAnswerValue verifica el valor según el tipo de pregunta:
// scale exige un entero 1..5; choice exige una de las opciones declaradas;
// text acepta cualquier valor no vacío (la presencia la valida el handler).
func validAnswerValue(q *entity.Question, value string) bool {
	switch q.Kind {
	case entity.QuestionScale:
		n, err := strconv.Atoi(value)
		return err == nil && n >= 1 && n <= 5
	case entity.QuestionChoice:
		for _, opt := range strings.Split(q.Options, "|") {
			if opt == value {
				return true
			}
		}
		return false
	default:
		return value != ""
	}
}

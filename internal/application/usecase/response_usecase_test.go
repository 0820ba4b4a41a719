package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	"github.com/tu-usuario/survey-pro/internal/domain"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSurveyRepo struct {
	surveys   map[int64]*entity.Survey
	questions map[int64][]*entity.Question // surveyID → preguntas en orden
	links     []entity.SurveyQuestion
	nextID    int64
}

func newFakeSurveyRepo() *fakeSurveyRepo {
	return &fakeSurveyRepo{
		surveys:   map[int64]*entity.Survey{},
		questions: map[int64][]*entity.Question{},
		nextID:    1,
	}
}

func (r *fakeSurveyRepo) Create(survey *entity.Survey) error {
	survey.ID = r.nextID
	r.nextID++
	cp := *survey
	r.surveys[survey.ID] = &cp
	return nil
}

func (r *fakeSurveyRepo) AddQuestion(surveyID, questionID int64, position int) error {
	r.links = append(r.links, entity.SurveyQuestion{SurveyID: surveyID, QuestionID: questionID, Position: position})
	return nil
}

func (r *fakeSurveyRepo) GetByID(id int64) (*entity.Survey, error) {
	s, ok := r.surveys[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSurveyRepo) List(limit, offset int) ([]*entity.Survey, error) {
	out := make([]*entity.Survey, 0, len(r.surveys))
	for _, s := range r.surveys {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSurveyRepo) ListQuestions(surveyID int64) ([]*entity.Question, error) {
	return r.questions[surveyID], nil
}

type fakeSubmissionRepo struct {
	submissions []*entity.Submission
	answers     []*entity.Answer
	nextID      int64
}

func (r *fakeSubmissionRepo) Create(submission *entity.Submission) error {
	r.nextID++
	submission.ID = r.nextID
	cp := *submission
	r.submissions = append(r.submissions, &cp)
	return nil
}

func (r *fakeSubmissionRepo) CreateAnswer(answer *entity.Answer) error {
	cp := *answer
	r.answers = append(r.answers, &cp)
	return nil
}

func (r *fakeSubmissionRepo) CountBySurvey(surveyID int64) (int64, error) {
	var n int64
	for _, s := range r.submissions {
		if s.SurveyID == surveyID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes, sin transacción real.
type fakeTxRunner struct {
	surveyRepo     *fakeSurveyRepo
	submissionRepo *fakeSubmissionRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.SurveyRepository, repository.SubmissionRepository) error) error {
	return fn(r.surveyRepo, r.submissionRepo)
}

func buildResponseUseCase() (*usecase.ResponseUseCase, *fakeSurveyRepo, *fakeSubmissionRepo) {
	surveyRepo := newFakeSurveyRepo()
	submissionRepo := &fakeSubmissionRepo{}
	uc := usecase.NewResponseUseCase(surveyRepo, &fakeTxRunner{surveyRepo: surveyRepo, submissionRepo: submissionRepo})
	return uc, surveyRepo, submissionRepo
}

// seedSurvey crea una encuesta con una pregunta de cada tipo y devuelve su id.
func seedSurvey(repo *fakeSurveyRepo) int64 {
	survey := &entity.Survey{Title: "Clima laboral"}
	_ = repo.Create(survey)
	repo.questions[survey.ID] = []*entity.Question{
		{ID: 10, Kind: entity.QuestionScale, Text: "¿Qué tan satisfecho está?"},
		{ID: 11, Kind: entity.QuestionText, Text: "Comentarios"},
		{ID: 12, Kind: entity.QuestionChoice, Text: "Área", Options: "ventas|soporte|operaciones"},
	}
	return survey.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_EnvioValido_PersisteTodo(t *testing.T) {
	uc, surveyRepo, submissionRepo := buildResponseUseCase()
	surveyID := seedSurvey(surveyRepo)

	out, err := uc.Submit(context.Background(), surveyID, 42, dto.SubmitResponseRequest{
		Answers: []dto.AnswerInput{
			{QuestionID: 10, Value: "4"},
			{QuestionID: 11, Value: "todo bien"},
			{QuestionID: 12, Value: "soporte"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SubmissionUUID)
	assert.Equal(t, surveyID, out.SurveyID)
	assert.Equal(t, 3, out.AnswerCount)

	require.Len(t, submissionRepo.submissions, 1)
	assert.Equal(t, int64(42), submissionRepo.submissions[0].RespondentID)
	assert.Len(t, submissionRepo.answers, 3)
	for _, a := range submissionRepo.answers {
		assert.Equal(t, submissionRepo.submissions[0].ID, a.SubmissionID)
	}
}

func TestSubmit_EncuestaInexistente(t *testing.T) {
	uc, _, _ := buildResponseUseCase()

	_, err := uc.Submit(context.Background(), 999, 42, dto.SubmitResponseRequest{
		Answers: []dto.AnswerInput{{QuestionID: 10, Value: "4"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_PreguntaFueraDeLaEncuesta(t *testing.T) {
	uc, surveyRepo, submissionRepo := buildResponseUseCase()
	surveyID := seedSurvey(surveyRepo)

	_, err := uc.Submit(context.Background(), surveyID, 42, dto.SubmitResponseRequest{
		Answers: []dto.AnswerInput{{QuestionID: 777, Value: "4"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, submissionRepo.submissions, "un envío inválido no debe persistir nada")
}

func TestSubmit_ValorFueraDeEscala(t *testing.T) {
	uc, surveyRepo, _ := buildResponseUseCase()
	surveyID := seedSurvey(surveyRepo)

	for _, value := range []string{"0", "6", "-1", "abc", ""} {
		_, err := uc.Submit(context.Background(), surveyID, 42, dto.SubmitResponseRequest{
			Answers: []dto.AnswerInput{{QuestionID: 10, Value: value}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor de escala %q debe rechazarse", value)
	}
}

func TestSubmit_OpcionNoDeclarada(t *testing.T) {
	uc, surveyRepo, _ := buildResponseUseCase()
	surveyID := seedSurvey(surveyRepo)

	_, err := uc.Submit(context.Background(), surveyID, 42, dto.SubmitResponseRequest{
		Answers: []dto.AnswerInput{{QuestionID: 12, Value: "marketing"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_TextoVacio(t *testing.T) {
	uc, surveyRepo, _ := buildResponseUseCase()
	surveyID := seedSurvey(surveyRepo)

	_, err := uc.Submit(context.Background(), surveyID, 42, dto.SubmitResponseRequest{
		Answers: []dto.AnswerInput{{QuestionID: 11, Value: ""}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_UUIDDistintoPorEnvio(t *testing.T) {
	uc, surveyRepo, _ := buildResponseUseCase()
	surveyID := seedSurvey(surveyRepo)

	in := dto.SubmitResponseRequest{Answers: []dto.AnswerInput{{QuestionID: 10, Value: "5"}}}
	first, err := uc.Submit(context.Background(), surveyID, 42, in)
	require.NoError(t, err)
	second, err := uc.Submit(context.Background(), surveyID, 43, in)
	require.NoError(t, err)

	assert.NotEqual(t, first.SubmissionUUID, second.SubmissionUUID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SurveyUseCase.Create: asociación atómica de preguntas
// ──────────────────────────────────────────────────────────────────────────────

func TestSurveyCreate_AsociaPreguntasEnOrden(t *testing.T) {
	surveyRepo := newFakeSurveyRepo()
	submissionRepo := &fakeSubmissionRepo{}
	uc := usecase.NewSurveyUseCase(surveyRepo, &fakeTxRunner{surveyRepo: surveyRepo, submissionRepo: submissionRepo})

	out, err := uc.Create(context.Background(), 7, dto.CreateSurveyRequest{
		Title:       "Onboarding",
		QuestionIDs: []int64{30, 10, 20},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.CreatedBy)

	require.Len(t, surveyRepo.links, 3)
	// La posición sigue el orden de la petición, no el id de la pregunta.
	assert.Equal(t, entity.SurveyQuestion{SurveyID: out.ID, QuestionID: 30, Position: 1}, surveyRepo.links[0])
	assert.Equal(t, entity.SurveyQuestion{SurveyID: out.ID, QuestionID: 10, Position: 2}, surveyRepo.links[1])
	assert.Equal(t, entity.SurveyQuestion{SurveyID: out.ID, QuestionID: 20, Position: 3}, surveyRepo.links[2])
}

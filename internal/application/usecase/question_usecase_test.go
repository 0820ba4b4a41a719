package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	"github.com/tu-usuario/survey-pro/internal/domain"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
)

type fakeQuestionRepo struct {
	created []*entity.Question
	nextID  int64
}

func (r *fakeQuestionRepo) Create(q *entity.Question) error {
	r.nextID++
	q.ID = r.nextID
	cp := *q
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeQuestionRepo) GetByID(id int64) (*entity.Question, error) { return nil, nil }

func (r *fakeQuestionRepo) List(limit, offset int) ([]*entity.Question, error) {
	return r.created, nil
}

func (r *fakeQuestionRepo) ListByCategory(categoryID int64, limit, offset int) ([]*entity.Question, error) {
	out := []*entity.Question{}
	for _, q := range r.created {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func TestQuestionCreate_KindInvalido(t *testing.T) {
	uc := usecase.NewQuestionUseCase(&fakeQuestionRepo{})

	_, err := uc.Create(dto.CreateQuestionRequest{CategoryID: 1, Text: "¿?", Kind: "ranking"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuestionCreate_ChoiceExigeDosOpciones(t *testing.T) {
	uc := usecase.NewQuestionUseCase(&fakeQuestionRepo{})

	for _, options := range []string{"", "solo-una", "   "} {
		_, err := uc.Create(dto.CreateQuestionRequest{
			CategoryID: 1, Text: "Área", Kind: entity.QuestionChoice, Options: options,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "options %q debe rechazarse", options)
	}

	out, err := uc.Create(dto.CreateQuestionRequest{
		CategoryID: 1, Text: "Área", Kind: entity.QuestionChoice, Options: "ventas|soporte",
	})
	require.NoError(t, err)
	assert.Equal(t, "ventas|soporte", out.Options)
}

func TestQuestionCreate_DescartaOptionsEnOtrosTipos(t *testing.T) {
	repo := &fakeQuestionRepo{}
	uc := usecase.NewQuestionUseCase(repo)

	out, err := uc.Create(dto.CreateQuestionRequest{
		CategoryID: 1, Text: "Satisfacción", Kind: entity.QuestionScale, Options: "a|b|c",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Options, "una pregunta scale no debe conservar options")
	assert.Empty(t, repo.created[0].Options)
}

func TestQuestionList_FiltraPorCategoria(t *testing.T) {
	repo := &fakeQuestionRepo{}
	uc := usecase.NewQuestionUseCase(repo)

	_, err := uc.Create(dto.CreateQuestionRequest{CategoryID: 1, Text: "a", Kind: entity.QuestionText})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateQuestionRequest{CategoryID: 2, Text: "b", Kind: entity.QuestionText})
	require.NoError(t, err)

	out, err := uc.List(2, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "b", out.Items[0].Text)

	all, err := uc.List(0, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

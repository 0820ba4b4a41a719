package usecase

import (
	"context"

	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo usan la creación de encuestas (cabecera + asociaciones de preguntas) y el
// envío de respuestas (cabecera + N respuestas): o entra todo o no entra nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		surveyRepo repository.SurveyRepository,
		submissionRepo repository.SubmissionRepository,
	) error) error
}

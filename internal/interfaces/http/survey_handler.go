package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	"github.com/tu-usuario/survey-pro/internal/domain"
)

// SurveyHandler maneja encuestas, envíos de respuestas, estadísticas y reportes.
type SurveyHandler struct {
	uc        *usecase.SurveyUseCase
	responses *usecase.ResponseUseCase
	analytics *usecase.AnalyticsUseCase
	reports   *usecase.ReportUseCase
	dev       bool
}

// NewSurveyHandler construye el handler inyectando los casos de uso.
func NewSurveyHandler(uc *usecase.SurveyUseCase, responses *usecase.ResponseUseCase, analytics *usecase.AnalyticsUseCase, reports *usecase.ReportUseCase, dev bool) *SurveyHandler {
	return &SurveyHandler{uc: uc, responses: responses, analytics: analytics, reports: reports, dev: dev}
}

func surveyIDFromParams(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido")
	}
	return int64(id), nil
}

// Create godoc
// @Summary      Crear encuesta
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSurveyRequest  true  "Título y preguntas"
// @Success      201   {object}  dto.SurveyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/surveys [post]
func (h *SurveyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSurveyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || len(in.QuestionIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y question_ids son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar encuestas
// @Tags         surveys
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SurveyListResponse
// @Router       /api/surveys [get]
func (h *SurveyHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Obtener encuesta con sus preguntas
// @Tags         surveys
// @Produce      json
// @Param        id   path  int  true  "ID de la encuesta"
// @Success      200  {object}  dto.SurveyDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surveys/{id} [get]
func (h *SurveyHandler) GetDetail(c *fiber.Ctx) error {
	id, err := surveyIDFromParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.uc.GetDetail(id)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
	}
	return c.JSON(out)
}

// SubmitResponse godoc
// @Summary      Responder encuesta
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la encuesta"
// @Param        body  body  dto.SubmitResponseRequest  true  "Respuestas"
// @Success      201   {object}  dto.SubmissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/surveys/{id}/response [post]
func (h *SurveyHandler) SubmitResponse(c *fiber.Ctx) error {
	id, err := surveyIDFromParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	var in dto.SubmitResponseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Answers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "answers no puede estar vacío"})
	}
	out, err := h.responses.Submit(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "respuestas inválidas para las preguntas de la encuesta"})
		}
		return internalError(c, h.dev, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de una encuesta
// @Tags         surveys
// @Produce      json
// @Param        id   path  int  true  "ID de la encuesta"
// @Success      200  {object}  dto.SurveyStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surveys/{id}/stats [get]
func (h *SurveyHandler) Stats(c *fiber.Ctx) error {
	id, err := surveyIDFromParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.analytics.GetSurveyStats(c.UserContext(), id)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de una encuesta
// @Tags         surveys
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la encuesta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surveys/{id}/report [get]
func (h *SurveyHandler) Report(c *fiber.Ctx) error {
	id, err := surveyIDFromParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	pdfBytes, err := h.reports.Generate(c.UserContext(), id)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	if pdfBytes == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="encuesta_%d.pdf"`, id))
	return c.Send(pdfBytes)
}

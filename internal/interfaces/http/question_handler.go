package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	"github.com/tu-usuario/survey-pro/internal/domain"
)

// QuestionHandler maneja las peticiones HTTP para el recurso Question.
type QuestionHandler struct {
	uc  *usecase.QuestionUseCase
	dev bool
}

// NewQuestionHandler construye el handler inyectando el caso de uso.
func NewQuestionHandler(uc *usecase.QuestionUseCase, dev bool) *QuestionHandler {
	return &QuestionHandler{uc: uc, dev: dev}
}

// Create godoc
// @Summary      Crear pregunta
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuestionRequest  true  "Datos de la pregunta"
// @Success      201   {object}  dto.QuestionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuestionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Text == "" || in.CategoryID <= 0 || in.Kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text, category_id y kind son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser scale, text o choice; choice requiere al menos 2 opciones"})
		}
		return internalError(c, h.dev, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar preguntas
// @Tags         questions
// @Produce      json
// @Param        category_id  query  int  false  "Filtrar por categoría"
// @Param        limit        query  int  false  "Límite"   default(20)
// @Param        offset       query  int  false  "Offset"   default(0)
// @Success      200          {object}  dto.QuestionListResponse
// @Router       /api/questions [get]
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	categoryID := int64(c.QueryInt("category_id", 0))
	out, err := h.uc.List(categoryID, page.Limit, page.Offset)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para el recurso Employee.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	dev bool
}

// NewEmployeeHandler construye el handler inyectando el caso de uso.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, dev bool) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, dev: dev}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.CompanyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y company_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Param        company_id  query  int  false  "Filtrar por empresa"
// @Param        limit       query  int  false  "Límite"   default(20)
// @Param        offset      query  int  false  "Offset"   default(0)
// @Success      200         {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	companyID := int64(c.QueryInt("company_id", 0))
	out, err := h.uc.List(companyID, page.Limit, page.Offset)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.JSON(out)
}

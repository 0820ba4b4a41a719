package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/survey-pro/internal/application/dto"
)

// internalError registra el fallo de store con detalle completo en el log y
// responde un mensaje genérico. El detalle solo se expone al cliente en
// development.
func internalError(c *fiber.Ctx, dev bool, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	msg := "error interno"
	if dev {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}

package rest

import (
	"errors"
	"net/http"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/gofiber/fiber/v3"
)

const messageInternal = "error interno del servidor"

// handleError is the single place where errors become HTTP responses.
func (s *HTTPServer) handleError(c fiber.Ctx, err error) error {
	status, msg := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Context(), "request failed",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// mapError picks the status and the client-facing message for err. Messages
// of 5xx errors are never echoed.
func mapError(err error) (int, string) {
	var (
		fe *fiber.Error
		ve *common.ValidationError
		ce *common.ConflictError
	)

	switch {
	case errors.As(err, &fe):
		if fe.Code >= http.StatusInternalServerError {
			return fe.Code, messageInternal
		}
		return fe.Code, fe.Message
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "credenciales invalidas"
	case errors.As(err, &ce):
		return http.StatusConflict, ce.Message
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "el recurso ya existe"
	default:
		return http.StatusInternalServerError, messageInternal
	}
}

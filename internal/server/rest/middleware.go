package rest

import (
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	headerRequestID = common.RequestIDHeaderName
	requestIDKey    = "request_id"
)

// logRequests tags the request with an id and logs one line once the
// response status is known.
func (s *HTTPServer) logRequests(c fiber.Ctx) error {
	start := time.Now()

	id := c.Get(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(requestIDKey, id)
	c.Set(headerRequestID, id)

	if err := c.Next(); err != nil {
		if herr := s.handleError(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Info(c.Context(), "request",
		"request_id", id,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
	)
	return nil
}

func requestID(c fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

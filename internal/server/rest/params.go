package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/gofiber/fiber/v3"
)

// pathID parses a numeric path parameter.
func pathID(c fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, common.NewValidationError("id invalido: %s", raw)
	}
	return id, nil
}

// bindJSON decodes the request body into out with the app's JSON decoder.
// Validation errors raised by custom unmarshalers keep their message, and a
// type mismatch names the offending field.
func bindJSON(c fiber.Ctx, out any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return common.NewValidationError("cuerpo JSON requerido")
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var (
		ve  *common.ValidationError
		ute *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &ve):
		return ve
	case errors.As(err, &ute) && ute.Field != "":
		return common.NewValidationError("campo %s invalido: se esperaba %s", ute.Field, ute.Type)
	default:
		return common.NewValidationError("cuerpo JSON invalido")
	}
}

type confirmation struct {
	Confirm bool `json:"confirmar"`
}

// confirmed reads {"confirmar": true} from a delete request. An empty body
// means not confirmed.
func confirmed(c fiber.Ctx) (bool, error) {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return false, nil
	}
	var in confirmation
	if err := bindJSON(c, &in); err != nil {
		return false, err
	}
	return in.Confirm, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func message(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"mensaje": msg})
}

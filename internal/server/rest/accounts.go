package rest

import (
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/gofiber/fiber/v3"
)

func (s *HTTPServer) createAccount(c fiber.Ctx) error {
	var in models.NewAccount
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	account, err := s.svc.Accounts.Create(c.Context(), in)
	if err != nil {
		return err
	}

	s.logger.Info(c.Context(), "Account created", "account_id", account.ID)
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (s *HTTPServer) listAccounts(c fiber.Ctx) error {
	list, err := s.svc.Accounts.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(nonNil(list))
}

func (s *HTTPServer) getAccount(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	account, err := s.svc.Accounts.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(account)
}

func (s *HTTPServer) updateAccount(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var patch models.AccountPatch
	if err := bindJSON(c, &patch); err != nil {
		return err
	}

	account, err := s.svc.Accounts.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(account)
}

func (s *HTTPServer) deleteAccount(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ok, err := confirmed(c)
	if err != nil {
		return err
	}

	if err := s.svc.Accounts.Delete(c.Context(), id, ok); err != nil {
		return err
	}

	s.logger.Info(c.Context(), "Account deleted", "account_id", id)
	return message(c, "Usuario eliminado")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) login(c fiber.Ctx) error {
	var in loginRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	account, err := s.svc.Auth.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"mensaje": "Login exitoso", "usuario": account})
}

func (s *HTTPServer) health(c fiber.Ctx) error {
	if s.svc.Ping != nil {
		if err := s.svc.Ping(c.Context()); err != nil {
			s.logger.Warn(c.Context(), "health check failed", "error", err.Error())
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

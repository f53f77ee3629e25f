package rest

import (
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/gofiber/fiber/v3"
)

func (s *HTTPServer) createCategory(c fiber.Ctx) error {
	var in models.NewCategory
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	category, err := s.svc.Categories.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (s *HTTPServer) listCategories(c fiber.Ctx) error {
	list, err := s.svc.Categories.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(nonNil(list))
}

func (s *HTTPServer) getCategory(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := s.svc.Categories.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (s *HTTPServer) deleteCategory(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ok, err := confirmed(c)
	if err != nil {
		return err
	}

	if err := s.svc.Categories.Delete(c.Context(), id, ok); err != nil {
		return err
	}
	return message(c, "Categoria eliminada")
}

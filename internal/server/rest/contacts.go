package rest

import (
	"fmt"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/gofiber/fiber/v3"
)

func (s *HTTPServer) createContact(c fiber.Ctx) error {
	accountID, err := pathID(c, "uid")
	if err != nil {
		return err
	}

	var in models.NewContact
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	contact, err := s.svc.Contacts.Create(c.Context(), accountID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (s *HTTPServer) listContacts(c fiber.Ctx) error {
	accountID, err := pathID(c, "uid")
	if err != nil {
		return err
	}

	list, err := s.svc.Contacts.ListByAccount(c.Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(nonNil(list))
}

func (s *HTTPServer) searchContacts(c fiber.Ctx) error {
	accountID, err := pathID(c, "uid")
	if err != nil {
		return err
	}

	list, err := s.svc.Contacts.Search(c.Context(), accountID, c.Query("nombre"))
	if err != nil {
		return err
	}
	return c.JSON(nonNil(list))
}

func (s *HTTPServer) exportContacts(c fiber.Ctx) error {
	accountID, err := pathID(c, "uid")
	if err != nil {
		return err
	}

	doc, err := s.svc.Exports.Export(c.Context(), accountID, c.Query("formato"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", doc.Filename))
	return c.Send(doc.Body)
}

func (s *HTTPServer) getContact(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	contact, err := s.svc.Contacts.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(contact)
}

func (s *HTTPServer) updateContact(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var patch models.ContactPatch
	if err := bindJSON(c, &patch); err != nil {
		return err
	}

	contact, err := s.svc.Contacts.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(contact)
}

func (s *HTTPServer) deleteContact(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ok, err := confirmed(c)
	if err != nil {
		return err
	}

	if err := s.svc.Contacts.Delete(c.Context(), id, ok); err != nil {
		return err
	}
	return message(c, "Contacto eliminado")
}

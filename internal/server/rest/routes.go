package rest

func (s *HTTPServer) registerRoutes() {
	s.app.Get("/health", s.health)
	s.app.Post("/login", s.login)

	accounts := s.app.Group("/usuarios")
	accounts.Post("/", s.createAccount)
	accounts.Get("/", s.listAccounts)
	accounts.Get("/:id", s.getAccount)
	accounts.Put("/:id", s.updateAccount)
	accounts.Delete("/:id", s.deleteAccount)

	accounts.Post("/:uid/contactos", s.createContact)
	accounts.Get("/:uid/contactos", s.listContacts)
	accounts.Get("/:uid/contactos/buscar", s.searchContacts)
	accounts.Get("/:uid/contactos/export", s.exportContacts)

	categories := s.app.Group("/categorias")
	categories.Post("/", s.createCategory)
	categories.Get("/", s.listCategories)
	categories.Get("/:id", s.getCategory)
	categories.Delete("/:id", s.deleteCategory)

	contacts := s.app.Group("/contactos")
	contacts.Get("/:id", s.getContact)
	contacts.Patch("/:id", s.updateContact)
	contacts.Delete("/:id", s.deleteContact)
}

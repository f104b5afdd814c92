package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes(g *echo.Group) {
	g.GET("", s.handleListContacts)
	g.POST("", s.handleAddContact)
	g.GET("/:id", s.handleGetContact)
	g.PUT("/:id", s.handleUpdateContact)
	g.DELETE("/:id", s.handleDeleteContact)
}

// handleListContacts godoc
// @Summary List Contacts
// @Description Get all contacts in store order
// @Tags persons
// @Produce json
// @Success 200 {array} ContactResponse
// @Router /api/persons [get]
func (s *Server) handleListContacts(c echo.Context) error {
	svc, err := s.contacts()
	if err != nil {
		return err
	}

	contacts, err := svc.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newContactListResponse(contacts))
}

// handleGetContact godoc
// @Summary Get Contact
// @Tags persons
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} map[string]string
// @Failure 404
// @Router /api/persons/{id} [get]
func (s *Server) handleGetContact(c echo.Context) error {
	svc, err := s.contacts()
	if err != nil {
		return err
	}

	found, err := svc.GetContact(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newContactResponse(found))
}

// handleAddContact godoc
// @Summary Create Contact
// @Description Add a new contact, the store assigns its id
// @Tags persons
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact Data"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} map[string]string
// @Router /api/persons [post]
func (s *Server) handleAddContact(c echo.Context) error {
	svc, err := s.contacts()
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	created, err := svc.AddContact(c.Request().Context(), req.ToContact())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newContactResponse(created))
}

// handleUpdateContact godoc
// @Summary Update Contact
// @Description Overwrite name and number of an existing contact
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body ContactRequest true "Contact Data"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} map[string]string
// @Failure 404
// @Router /api/persons/{id} [put]
func (s *Server) handleUpdateContact(c echo.Context) error {
	svc, err := s.contacts()
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	updated, err := svc.UpdateContact(c.Request().Context(), c.Param("id"), req.Name, req.Number)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newContactResponse(updated))
}

// handleDeleteContact godoc
// @Summary Delete Contact
// @Description Delete a contact, missing contacts are not an error
// @Tags persons
// @Param id path string true "Contact ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /api/persons/{id} [delete]
func (s *Server) handleDeleteContact(c echo.Context) error {
	svc, err := s.contacts()
	if err != nil {
		return err
	}

	if err := svc.RemoveContact(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

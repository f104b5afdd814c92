package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const infoTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

func (s *Server) RegisterInfoRoutes() {
	s.Router.GET("/info", s.handleInfo)
}

// handleInfo godoc
// @Summary Phonebook Info
// @Description Number of stored contacts and the current server time
// @Tags info
// @Produce html
// @Success 200 {string} string
// @Router /info [get]
func (s *Server) handleInfo(c echo.Context) error {
	svc, err := s.contacts()
	if err != nil {
		return err
	}

	count, err := svc.CountContacts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.HTML(http.StatusOK, fmt.Sprintf(
		"<h2>Phonebook has info for %d people</h2><h3>%s</h3>",
		count, s.Now().Format(infoTimeLayout),
	))
}

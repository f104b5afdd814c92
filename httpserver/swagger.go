package httpserver

import echoSwagger "github.com/swaggo/echo-swagger"

// RegisterSwaggerRoutes serves the API docs generated from the handler
// annotations.
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}

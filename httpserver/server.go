package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"phonebook/contact"
	"phonebook/errs"
	"phonebook/pkg/config"
	"phonebook/pkg/logger"
	"phonebook/pkg/sentry"
	"strings"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// StaticDir holds a built frontend served from "/", empty disables it
	StaticDir string

	// RateLimit in requests per second per client, zero disables it
	RateLimit float64

	Logger *zap.SugaredLogger

	// Now is the clock used by the info page
	Now func() time.Time

	ContactService contact.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		StaticDir:    cfg.StaticDir,
		RateLimit:    cfg.RateLimit,
		Logger:       logger.NOOPLogger,
		Now:          time.Now,
	}
	if cfg.Port != 0 {
		s.Addr = fmt.Sprintf(":%d", cfg.Port)
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = s.handleHTTPError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterInfoRoutes()
	s.RegisterContactRoutes(s.Router.Group("/api/persons"))
	s.RegisterStaticRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(s.RateLimit))))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) RegisterStaticRoutes() {
	if s.StaticDir == "" {
		return
	}
	s.Router.Static("/", s.StaticDir)
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) contacts() (contact.Service, error) {
	if s.ContactService == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "contact service not configured")
	}
	return s.ContactService, nil
}

// handleHTTPError maps application errors to HTTP responses. NotFound is
// answered with an empty body, every other failure with {"error": message}.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	// the request logger already handled it
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EMISSING, errs.EMALFORMED, errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = ""
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(),
			"request_id", s.requestID(c),
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
		)
		sentry.WithContext(c).Error(err)
	}

	if message == "" || c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": message})
	}
	if err != nil {
		s.Logger.Errorw("cannot write error response", "error", err)
	}
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// bodyLimit caps request bodies; advice payloads are small.
const bodyLimit = "2M"

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(LoggerMiddleware)
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAccept, echo.HeaderContentType, "X-Request-ID"},
		MaxAge:       300,
	}))

	// Probes
	e.GET("/health", s.healthHandler)
	e.GET("/health/system", s.systemHealthHandler)
	e.POST("/warmup", s.advice.WarmupHandler)

	// Advice
	e.POST("/advice", s.advice.PostAdviceHandler)

	return e
}

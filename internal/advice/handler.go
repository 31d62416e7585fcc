package advice

import (
	"net/http"

	"fitcoach/internal/coachservice"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Handler serves the advice endpoints.
type Handler struct {
	engine *coachservice.Engine
	cache  *Cache
}

func NewHandler(engine *coachservice.Engine, cache *Cache) *Handler {
	return &Handler{engine: engine, cache: cache}
}

// loggerFrom returns the request logger set by the server's LoggerMiddleware,
// or the global logger when there is none.
func loggerFrom(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get("logger").(*zerolog.Logger); ok && l != nil {
		return l
	}
	return &log.Logger
}

// PostAdviceHandler generates coaching text for the submitted totals and goals.
func (h *Handler) PostAdviceHandler(c echo.Context) error {
	logger := loggerFrom(c)

	// 1. Parse body. Field-level problems never fail here; only a body that
	// is not JSON at all does.
	var req AdviceRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn().Err(err).Msg("PostAdviceHandler: could not parse body")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid-body"})
	}

	// 2. Generate (cached)
	in := req.ToInput()
	res, hit, err := h.cache.Generate(c.Request().Context(), in)
	if err != nil {
		logger.Error().Err(err).Msg("PostAdviceHandler: advice generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "advice-failed"})
	}

	logger.Info().
		Bool("cache_hit", hit).
		Int("lines", len(res.Lines)).
		Bool("has_user", in.UserID != "").
		Msg("advice served")

	// 3. Respond
	return c.JSON(http.StatusOK, AdviceResponse{
		Advice:     res.Text,
		TopicsUsed: res.TopicsUsed,
	})
}

// WarmupHandler runs one throwaway generation so lazy initialisation is paid
// before the first real request. It bypasses the cache.
func (h *Handler) WarmupHandler(c echo.Context) error {
	logger := loggerFrom(c)

	if _, err := h.engine.Generate(c.Request().Context(), coachservice.Input{Seed: "warmup"}); err != nil {
		logger.Error().Err(err).Msg("WarmupHandler: warmup generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "warmup-failed"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true, "warmed": true})
}

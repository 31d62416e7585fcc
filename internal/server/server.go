/*
Package server implements the application's network transport layer.
It loads configuration, wires the advice engine into echo, and configures
the http.Server timeouts.
*/
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"fitcoach/internal/advice"
	"fitcoach/internal/coachservice"
	"fitcoach/internal/utility"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort      = 10000
	defaultCacheSize = 1024
)

// Config is everything the server reads from the environment.
type Config struct {
	// Port is the TCP port the server listens on.
	Port int

	// CacheSize is the number of advice results kept in memory. 0 disables it.
	CacheSize int

	// AllowOrigins feeds the CORS middleware.
	AllowOrigins []string
}

// LoadConfig reads the configuration from the environment, falling back to
// defaults for anything unset or invalid.
func LoadConfig() Config {
	origins := utility.SplitCSV(os.Getenv("CORS_ALLOW_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// PORT=0 would mean "any free port"; treat it as unset like any other bad value.
	port := getEnvInt("PORT", defaultPort)
	if port == 0 {
		port = defaultPort
	}

	return Config{
		Port:         port,
		CacheSize:    getEnvInt("ADVICE_CACHE_SIZE", defaultCacheSize),
		AllowOrigins: origins,
	}
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// allowOrigins is passed to the CORS middleware.
	allowOrigins []string

	// startedAt anchors the uptime reported by /health.
	startedAt time.Time

	// advice serves /advice and /warmup.
	advice *advice.Handler
}

// New builds a Server from cfg. Engine options (clock, post-processor) are
// passed straight to the advice engine.
func New(cfg Config, opts ...coachservice.Option) (*Server, error) {
	opts = append([]coachservice.Option{coachservice.WithLogger(log.Logger)}, opts...)
	engine := coachservice.NewEngine(opts...)

	cache, err := advice.NewCache(engine, cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Server{
		port:         cfg.Port,
		allowOrigins: cfg.AllowOrigins,
		startedAt:    time.Now(),
		advice:       advice.NewHandler(engine, cache),
	}, nil
}

// NewServer initializes a new Server from the environment and returns a
// configured *http.Server.
func NewServer() (*http.Server, error) {
	cfg := LoadConfig()

	newApp, err := New(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.Port).
		Int("cache_size", cfg.CacheSize).
		Msg("fitcoach advice server configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(), // Injected from routes.go
		IdleTimeout:  time.Minute,             // Time to wait for the next request on keep-alive connections.
		ReadTimeout:  10 * time.Second,        // Maximum duration for reading the entire request.
		WriteTimeout: 30 * time.Second,        // Maximum duration before timing out writes of the response.
	}

	return server, nil
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/stacklyzer/internal/config"
	"github.com/jonathan/stacklyzer/internal/db"
	"github.com/jonathan/stacklyzer/internal/engine"
	"github.com/jonathan/stacklyzer/internal/fetch"
	"github.com/jonathan/stacklyzer/internal/server/middleware"
	"github.com/jonathan/stacklyzer/internal/server/ratelimit"
	"github.com/jonathan/stacklyzer/internal/types"
)

// Paths that need neither an origin check nor a bearer token.
var publicAPIPaths = []string{"/api/token", "/api/detect"}

// Analyzer produces a technology report for a URL.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*types.AnalysisReport, error)
}

// Store persists contact messages and scan history.
type Store interface {
	InsertContactMessage(ctx context.Context, msg *db.ContactMessage) (uuid.UUID, error)
	SaveScan(ctx context.Context, report *types.AnalysisReport) (uuid.UUID, error)
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    Analyzer
	store       Store
	frontendURL string
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	appSecret   *config.AppSecretConfig
}

// Config holds server configuration
type Config struct {
	Port         int
	FrontendURL  string
	DatabaseURL  string
	FetchOptions *fetch.Options
	Verbose      bool
}

// New creates a new server instance. The database is optional: without
// DatabaseURL the contact form answers 503 and scans are not recorded.
func New(cfg Config) (*Server, error) {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	appSecret, err := config.NewAppSecretConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create app secret config: %w", err)
	}

	engineOpts := []engine.Option{engine.WithFetchOptions(cfg.FetchOptions)}
	if cfg.Verbose {
		engineOpts = append(engineOpts, engine.WithLogger(log.Default()))
	}
	analyzer, err := engine.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	var store Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		store = database
	} else {
		log.Println("DATABASE_URL not set; contact form and scan history are disabled")
	}

	s := newServer(analyzer, store, NewJWTService(jwtConfig, cfg.FrontendURL), appSecret,
		ratelimit.NewLimiter(ratelimit.LoadConfig()), cfg.FrontendURL)
	s.jwtService.StartCleanup()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func newServer(analyzer Analyzer, store Store, jwtService *JWTService, appSecret *config.AppSecretConfig,
	limiter *ratelimit.Limiter, frontendURL string) *Server {
	return &Server{
		analyzer:    analyzer,
		store:       store,
		frontendURL: frontendURL,
		rateLimiter: limiter,
		jwtService:  jwtService,
		appSecret:   appSecret,
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleUsage)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/token", s.handleToken)
	mux.HandleFunc("POST /api/detect", s.handleDetect)

	protected := middleware.AuthMiddleware(s.jwtService.AsTokenValidator(), publicAPIPaths...)(
		http.HandlerFunc(s.handleContact))
	protected = middleware.VerifyOrigin(s.frontendURL, s.appSecret, publicAPIPaths...)(protected)
	mux.Handle("POST /api/contact", protected)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close releases background goroutines and the database pool.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.jwtService != nil {
		s.jwtService.Stop()
	}
	if s.store != nil {
		s.store.Close()
	}
}

// withCORS adds CORS headers for the configured frontend. Requests from the
// Android app are not browser requests and skip CORS entirely.
func (s *Server) withCORS(next http.Handler) http.Handler {
	allowOrigin := s.frontendURL
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.IsAndroid(r) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if allowOrigin != "*" {
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{Error: errMsg, Message: message})
}

// extractClientID extracts the client identifier from the request.
// It uses the IP address from RemoteAddr; forwarded headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(info.Remaining))
		reset := int(time.Until(info.ResetTime).Seconds())
		if reset < 0 {
			reset = 0
		}
		w.Header().Set("RateLimit-Reset", strconv.Itoa(reset))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	message := info.Message
	if message == "" {
		message = "Too many requests, please try again later"
	}
	response := map[string]any{
		"error": message,
	}
	if info.Retry != "" {
		response["retryAfter"] = info.Retry
	}

	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds()+0.5)))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

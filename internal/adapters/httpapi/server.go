package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server is the JSON HTTP frontend. It holds the single UI session that
// every request operates on.
type Server struct {
	service     *core.InboxService
	session     *core.Session
	logger      *zap.Logger
	listenAddr  string
	corsOrigins []string

	server *http.Server
	addr   net.Addr

	// Background analyses started by open outlive their request
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewServer creates a new HTTP frontend
func NewServer(service *core.InboxService, logger *zap.Logger, listenAddr string, corsOrigins []string) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		service:     service,
		session:     core.NewSession(),
		logger:      logger,
		listenAddr:  listenAddr,
		corsOrigins: corsOrigins,
		baseCtx:     ctx,
		cancel:      cancel,
	}
}

// Session returns the session served by this frontend
func (s *Server) Session() *core.Session {
	return s.session
}

// Handler builds the router
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", s.handleGetSession)
		r.Put("/session", s.handlePutSession)
		r.Delete("/selection", s.handleCloseSelection)

		r.Get("/messages", s.handleListMessages)
		r.Get("/messages/{id}", s.handleGetMessage)
		r.Post("/messages/{id}/open", s.handleOpenMessage)
		r.Post("/messages/{id}/analyze", s.handleAnalyzeMessage)

		r.Post("/drafts/scan", s.handleScanDraft)

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/patterns", s.handlePatterns)
		r.Get("/journal", s.handleJournal)
	})

	return r
}

// Start starts listening and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listenAddr, err)
	}
	s.addr = ln.Addr()

	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP frontend started", zap.String("address", s.addr.String()))

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Stop shuts the server down and cancels background analyses
func (s *Server) Stop() error {
	var err error
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = s.server.Shutdown(ctx)
	}
	s.cancel()
	s.wg.Wait()
	return err
}

// requestLogger writes one zap entry per request
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("Handled request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

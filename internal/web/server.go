// Package web serves the recommender as an HTML page with an embedded
// player, plus a JSON API. Every visitor gets an independent session.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/embed"
	"github.com/llehouerou/chorus/internal/logging"
)

// Options configures the server.
type Options struct {
	Addr         string
	SessionTTL   time.Duration
	Player       embed.Player
	Registry     *catalog.Registry
	TrendingFile string
	NewSession   SessionFactory

	AllowedOrigins []string // CORS origins for /api/v1; empty sends no CORS headers
	RateLimit      int      // API requests per minute per client IP; 0 disables
}

// Server is the web shell.
type Server struct {
	opts  Options
	store *Store
	log   zerolog.Logger
}

// New creates a server. Sessions are created on first visit with
// opts.NewSession.
func New(opts Options) *Server {
	return &Server{
		opts:  opts,
		store: NewStore(opts.SessionTTL, opts.NewSession),
		log:   logging.With("web"),
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger())
	r.Use(chimiddleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/", s.handlePage)
		r.Post("/dataset-type", s.handleFormDatasetType)
		r.Post("/dataset", s.handleFormDataset)
		r.Post("/category", s.handleFormCategory)
		r.Post("/another", s.handleFormAnother)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if len(s.opts.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   s.opts.AllowedOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		if s.opts.RateLimit > 0 {
			r.Use(httprate.LimitByIP(s.opts.RateLimit, time.Minute))
		}

		r.Get("/datasets", s.handleAPIDatasets)

		r.Group(func(r chi.Router) {
			r.Use(s.withSession)

			r.Get("/state", s.handleAPIState)
			r.Post("/category", s.handleAPICategory)
			r.Post("/another", s.handleAPIAnother)
			r.Post("/dataset", s.handleAPIDataset)
		})
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.opts.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("stopped")
	return nil
}

// Package web is the HTTP adapter in front of the fact selection engine.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/ledger"
	"github.com/sandevgo/factbot/internal/service/facts"
	"github.com/sandevgo/factbot/pkg/log"
)

// Selector is the part of the engine the HTTP layer depends on.
type Selector interface {
	Select(ctx context.Context, userID string, mode facts.Mode, l ledger.Ledger) (facts.Outcome, error)
}

// Identity resolves the authenticated user of a request, "" when anonymous.
type Identity interface {
	UserID(r *http.Request) string
}

type Server struct {
	cfg      config.ServerConfig
	selector Selector
	identity Identity
	srv      *http.Server
}

func NewServer(ctx context.Context, cfg config.ServerConfig, selector Selector, identity Identity) *Server {
	s := &Server{
		cfg:      cfg,
		selector: selector,
		identity: identity,
	}

	s.srv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.routes(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) routes(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(ctx))
	r.Use(chimiddleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(noCache)
		if s.cfg.RateLimit > 0 {
			r.Use(httprate.Limit(
				s.cfg.RateLimit,
				s.cfg.RateWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(handleRateLimited),
			))
		}
		r.Get("/funfact", s.handleFunFact)
	})

	return r
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.ListenAddr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("stopping http server")
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/facts"
	"github.com/sandevgo/factbot/pkg/log"
)

const (
	msgNotAuthenticated = "Not authenticated"
	msgNoFavorite       = "No favorite movie set"
	msgMovieNotFound    = "Movie not found"
	msgNoFreshFact      = "No more unique facts available"
	msgInternal         = "Failed to fetch a fact"
)

type success struct {
	OK         bool   `json:"ok"`
	Type       string `json:"type"`
	MovieTitle string `json:"movieTitle"`
	FactID     string `json:"factId"`
	Text       string `json:"text"`
}

type failure struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Actions []string `json:"actions,omitempty"`
}

func (s *Server) handleFunFact(w http.ResponseWriter, r *http.Request) {
	logger := log.FromCtx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	mode := facts.ParseMode(r.URL.Query().Get("mode"))
	userID := s.identity.UserID(r)

	out, err := s.selector.Select(ctx, userID, mode, readLedger(r))
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error().Err(err).Str("mode", string(mode)).Msg("fact selection failed")
		}
		writeJSON(ctx, w, status, failure{Message: msg})
		return
	}

	if !out.OK() {
		writeJSON(ctx, w, http.StatusOK, failure{
			Message: msgNoFreshFact,
			Actions: []string{"retry", "previous"},
		})
		return
	}

	if err := writeLedger(w, out.Ledger, s.cfg.SecureCookies); err != nil {
		logger.Warn().Err(err).Msg("failed to write ledger cookie")
	}

	writeJSON(ctx, w, http.StatusOK, success{
		OK:         true,
		Type:       string(out.Kind),
		MovieTitle: out.MovieTitle,
		FactID:     out.Fact.ID,
		Text:       out.Fact.Text,
	})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrNotAuthenticated):
		return http.StatusUnauthorized, msgNotAuthenticated
	case errors.Is(err, core.ErrNoFavorite):
		return http.StatusBadRequest, msgNoFavorite
	case errors.Is(err, core.ErrMovieNotFound):
		return http.StatusNotFound, msgMovieNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to encode response")
		http.Error(w, `{"ok":false}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

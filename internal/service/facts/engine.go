// Package facts picks the next fun fact for a user's favorite movie, reusing
// stored facts before paying for generation and never repeating an idea the
// user has already seen.
package facts

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/ledger"
	"github.com/sandevgo/factbot/internal/metrics"
	"github.com/sandevgo/factbot/pkg/log"
)

type Mode string

const (
	ModeFresh    Mode = "fresh"
	ModePrevious Mode = "previous"
)

// ParseMode maps anything other than "previous" to ModeFresh.
func ParseMode(s string) Mode {
	if Mode(s) == ModePrevious {
		return ModePrevious
	}
	return ModeFresh
}

type OutcomeKind string

const (
	OutcomeStored    OutcomeKind = "stored"
	OutcomeGenerated OutcomeKind = "generated"
	// OutcomeExhausted means generation ran out of attempts. The caller may retry.
	OutcomeExhausted OutcomeKind = "exhausted"
)

type Outcome struct {
	Kind       OutcomeKind
	Fact       core.Fact
	Movie      core.Movie
	MovieTitle string
	// Ledger is the value to hand back to the client. It equals the input
	// ledger when Kind is OutcomeExhausted.
	Ledger ledger.Ledger
}

func (o Outcome) OK() bool {
	return o.Kind != OutcomeExhausted
}

type Engine struct {
	users  core.UserRepository
	movies core.MovieRepository
	facts  core.FactRepository
	gen    core.FactGenerator
	cfg    core.SelectionConfig
}

func NewEngine(
	users core.UserRepository,
	movies core.MovieRepository,
	facts core.FactRepository,
	gen core.FactGenerator,
	cfg core.SelectionConfig,
) *Engine {
	return &Engine{
		users:  users,
		movies: movies,
		facts:  facts,
		gen:    gen,
		cfg:    cfg,
	}
}

// Select runs one request through the selection flow. Access problems are
// returned as core sentinel errors; exhaustion is an Outcome, not an error.
func (e *Engine) Select(ctx context.Context, userID string, mode Mode, l ledger.Ledger) (Outcome, error) {
	logger := log.FromCtx(ctx)

	movie, err := e.resolveMovie(ctx, userID)
	if err != nil {
		return Outcome{}, err
	}

	seenIDs := l.IDs(movie.ID)
	seen, err := e.facts.GetFactsByIDs(ctx, seenIDs)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to load seen facts: %w", err)
	}
	sc := newSelectionContext(seenIDs, seen)

	var gc *generationContext
	m := newMachine(mode, e.cfg.GetGenerationAttempts())

	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		logger.Debug().
			Stringer("phase", m.Phase).
			Int("attempt", m.Attempt).
			Str("movie_id", movie.ID).
			Int("seen", len(seenIDs)).
			Msg("selection step")

		switch m.Phase {
		case PhaseTryPrevious:
			fact, ok, err := e.previous(ctx, movie.ID, sc)
			if err != nil {
				return Outcome{}, err
			}
			if ok {
				return e.finish(mode, OutcomeStored, fact, movie, l), nil
			}

		case PhaseTryStored:
			candidates, err := e.facts.GetFactsForMovieExcluding(
				ctx, movie.ID, seenIDs, e.cfg.GetStoredCandidateLimit(), core.SortDesc,
			)
			if err != nil {
				return Outcome{}, fmt.Errorf("failed to load stored candidates: %w", err)
			}
			if fact, ok := pickBestStored(candidates, sc); ok {
				return e.finish(mode, OutcomeStored, fact, movie, l), nil
			}

		case PhaseGenerate:
			if gc == nil {
				existing, err := e.facts.GetFactsForMovie(ctx, movie.ID, e.cfg.GetHistoryLimit())
				if err != nil {
					return Outcome{}, fmt.Errorf("failed to load movie history: %w", err)
				}
				g := newGenerationContext(existing)
				gc = &g
			}

			candidate := e.gen.Generate(ctx, gc.request(movie))
			acc, v := judge(candidate, *gc, sc, e.cfg.GetMinConfidence())
			metrics.RecordGenerationAttempt(string(v))

			if v == verdictAccepted {
				// A concurrent request may have created the same key; the
				// store hands back that row and it is served as is.
				created, err := e.facts.CreateFact(ctx, movie.ID, acc.Text, acc.Key, acc.Category)
				if err != nil {
					return Outcome{}, fmt.Errorf("failed to save generated fact: %w", err)
				}
				return e.finish(mode, OutcomeGenerated, created, movie, l), nil
			}

			logger.Debug().
				Int("attempt", m.Attempt).
				Str("verdict", string(v)).
				Str("key", candidate.Key).
				Msg("generated candidate rejected")

		case PhaseFail:
			logger.Info().Str("movie_id", movie.ID).Msg("no fresh fact available")
			metrics.RecordSelection(string(mode), string(OutcomeExhausted))
			return Outcome{
				Kind:       OutcomeExhausted,
				Movie:      movie,
				MovieTitle: movie.DisplayTitle(),
				Ledger:     l,
			}, nil
		}

		m = m.advance()
	}
}

func (e *Engine) resolveMovie(ctx context.Context, userID string) (core.Movie, error) {
	if userID == "" {
		return core.Movie{}, core.ErrNotAuthenticated
	}

	user, err := e.users.GetUser(ctx, userID)
	if errors.Is(err, core.ErrUserNotFound) {
		return core.Movie{}, core.ErrNotAuthenticated
	}
	if err != nil {
		return core.Movie{}, fmt.Errorf("failed to load user: %w", err)
	}

	if user.FavoriteMovieID == "" {
		return core.Movie{}, core.ErrNoFavorite
	}

	movie, err := e.movies.GetMovie(ctx, user.FavoriteMovieID)
	if err != nil {
		if errors.Is(err, core.ErrMovieNotFound) {
			return core.Movie{}, core.ErrMovieNotFound
		}
		return core.Movie{}, fmt.Errorf("failed to load movie: %w", err)
	}
	return movie, nil
}

// previous resolves the fact shown before the current one. A missing or
// foreign fact is not an error; the flow moves on to stored selection.
func (e *Engine) previous(ctx context.Context, movieID string, sc selectionContext) (core.Fact, bool, error) {
	id, ok := sc.previousID()
	if !ok {
		return core.Fact{}, false, nil
	}

	fact, err := e.facts.GetFactByID(ctx, id)
	if errors.Is(err, core.ErrFactNotFound) {
		return core.Fact{}, false, nil
	}
	if err != nil {
		return core.Fact{}, false, fmt.Errorf("failed to load previous fact: %w", err)
	}
	if fact.MovieID != movieID {
		return core.Fact{}, false, nil
	}
	return fact, true, nil
}

func (e *Engine) finish(mode Mode, kind OutcomeKind, fact core.Fact, movie core.Movie, l ledger.Ledger) Outcome {
	metrics.RecordSelection(string(mode), string(kind))
	return Outcome{
		Kind:       kind,
		Fact:       fact,
		Movie:      movie,
		MovieTitle: movie.DisplayTitle(),
		Ledger:     l.Add(movie.ID, fact.ID),
	}
}

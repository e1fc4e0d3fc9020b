// Package cli is an interactive terminal front end for the fact engine.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/ledger"
	"github.com/sandevgo/factbot/internal/service/facts"
	"github.com/sandevgo/factbot/pkg/log"
)

const helpText = "commands: next (or empty line), previous, help, exit"

const (
	msgNotAuthenticated = "Not authenticated"
	msgNoFavorite       = "No favorite movie set"
	msgMovieNotFound    = "Movie not found"
	msgNoFreshFact      = "No more unique facts available. Try again or ask for the previous one."
	msgInternal         = "Failed to fetch a fact"
)

// Selector is the part of the engine the shell depends on.
type Selector interface {
	Select(ctx context.Context, userID string, mode facts.Mode, l ledger.Ledger) (facts.Outcome, error)
}

// Shell asks the engine for facts on behalf of one user. The recent-facts
// ledger lives in memory for the session and is persisted to ledgerPath.
type Shell struct {
	selector   Selector
	userID     string
	ledgerPath string
	ledger     ledger.Ledger
}

func NewShell(selector Selector, userID, runtimePath string) (*Shell, error) {
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	s := &Shell{
		selector:   selector,
		userID:     userID,
		ledgerPath: ledgerPath(runtimePath, userID),
		ledger:     ledger.Ledger{},
	}

	if raw, err := os.ReadFile(s.ledgerPath); err == nil {
		s.ledger = ledger.Decode(strings.TrimSpace(string(raw)))
	}
	return s, nil
}

// ledgerPath derives the file name from a hash of the user id so any id
// stays inside runtimePath.
func ledgerPath(runtimePath, userID string) string {
	name := uuid.NewSHA1(uuid.NameSpaceOID, []byte(userID)).String()
	return filepath.Join(runtimePath, "shell_ledger_"+name)
}

// Run reads commands until exit, EOF, Ctrl+C on an empty line or ctx end.
func (s *Shell) Run(ctx context.Context, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "fact> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), helpText)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		out, done := s.Handle(ctx, line)
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
		if done {
			return nil
		}
	}
}

// Handle executes a single command line and returns the text to print and
// whether the session should end.
func (s *Shell) Handle(ctx context.Context, line string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return "", true
	case "help", "?":
		return helpText, false
	case "", "next", "n":
		return s.ask(ctx, facts.ModeFresh), false
	case "previous", "prev", "p":
		return s.ask(ctx, facts.ModePrevious), false
	default:
		return "unknown command, " + helpText, false
	}
}

func (s *Shell) ask(ctx context.Context, mode facts.Mode) string {
	out, err := s.selector.Select(ctx, s.userID, mode, s.ledger)
	if err != nil {
		return describeError(ctx, err)
	}

	if !out.OK() {
		return msgNoFreshFact
	}

	s.ledger = out.Ledger
	s.save(ctx)

	return fmt.Sprintf("[%s] %s\n%s", out.Kind, out.MovieTitle, out.Fact.Text)
}

func (s *Shell) save(ctx context.Context) {
	raw, err := ledger.Encode(s.ledger)
	if err == nil {
		err = os.WriteFile(s.ledgerPath, []byte(raw), 0600)
	}
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("path", s.ledgerPath).Msg("failed to persist ledger")
	}
}

func describeError(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, core.ErrNotAuthenticated):
		return msgNotAuthenticated
	case errors.Is(err, core.ErrNoFavorite):
		return msgNoFavorite
	case errors.Is(err, core.ErrMovieNotFound):
		return msgMovieNotFound
	default:
		log.FromCtx(ctx).Error().Err(err).Msg("fact selection failed")
		return msgInternal
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/ledger"
	"github.com/sandevgo/factbot/internal/service/facts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSelector struct {
	outcome facts.Outcome
	err     error

	gotMode   facts.Mode
	gotLedger ledger.Ledger
	calls     int
}

func (f *fakeSelector) Select(ctx context.Context, userID string, mode facts.Mode, l ledger.Ledger) (facts.Outcome, error) {
	f.calls++
	f.gotMode, f.gotLedger = mode, l
	return f.outcome, f.err
}

func generatedOutcome() facts.Outcome {
	return facts.Outcome{
		Kind:       facts.OutcomeGenerated,
		Fact:       core.Fact{ID: "f1", MovieID: "m1", Text: "Keanu Reeves gave the stunt team motorcycles."},
		MovieTitle: "The Matrix (1999)",
		Ledger:     ledger.Ledger{"m1": {"f1"}},
	}
}

func TestShell_HandleCommands(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantMode facts.Mode
		wantDone bool
		asks     bool
	}{
		{"empty line asks", "", facts.ModeFresh, false, true},
		{"next", "next", facts.ModeFresh, false, true},
		{"previous", " Previous ", facts.ModePrevious, false, true},
		{"short previous", "p", facts.ModePrevious, false, true},
		{"exit", "exit", "", true, false},
		{"help", "help", "", false, false},
		{"unknown", "dance", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &fakeSelector{outcome: generatedOutcome()}
			sh, err := NewShell(sel, "u1", t.TempDir())
			require.NoError(t, err)

			_, done := sh.Handle(context.Background(), tt.line)
			assert.Equal(t, tt.wantDone, done)

			if tt.asks {
				assert.Equal(t, 1, sel.calls)
				assert.Equal(t, tt.wantMode, sel.gotMode)
			} else {
				assert.Zero(t, sel.calls)
			}
		})
	}
}

func TestShell_LedgerCarriesAcrossTurnsAndRestarts(t *testing.T) {
	dir := t.TempDir()
	sel := &fakeSelector{outcome: generatedOutcome()}

	sh, err := NewShell(sel, "u1", dir)
	require.NoError(t, err)

	out, _ := sh.Handle(context.Background(), "next")
	assert.Contains(t, out, "The Matrix (1999)")
	assert.Contains(t, out, "motorcycles")
	assert.Contains(t, out, "[generated]")

	sh.Handle(context.Background(), "next")
	assert.Equal(t, []string{"f1"}, sel.gotLedger.IDs("m1"))

	restarted, err := NewShell(sel, "u1", dir)
	require.NoError(t, err)
	restarted.Handle(context.Background(), "previous")
	assert.Equal(t, []string{"f1"}, sel.gotLedger.IDs("m1"))
}

func TestShell_ExhaustedKeepsLedger(t *testing.T) {
	sel := &fakeSelector{outcome: facts.Outcome{Kind: facts.OutcomeExhausted, Ledger: ledger.Ledger{"m1": {"zz"}}}}
	sh, err := NewShell(sel, "u1", t.TempDir())
	require.NoError(t, err)

	out, _ := sh.Handle(context.Background(), "next")
	assert.Contains(t, out, "No more unique facts")

	sh.Handle(context.Background(), "next")
	assert.Empty(t, sel.gotLedger.IDs("m1"))
}

func TestShell_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{core.ErrNotAuthenticated, "Not authenticated"},
		{core.ErrNoFavorite, "No favorite movie set"},
		{core.ErrMovieNotFound, "Movie not found"},
		{fmt.Errorf("failed to load user: %w", errors.New("disk on fire")), "Failed to fetch a fact"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			sh, err := NewShell(&fakeSelector{err: tt.err}, "u1", t.TempDir())
			require.NoError(t, err)

			out, done := sh.Handle(context.Background(), "next")
			assert.False(t, done)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestShell_LedgerFileStaysInRuntimeDir(t *testing.T) {
	root := t.TempDir()
	runtime := filepath.Join(root, "runtime")

	for _, userID := range []string{"../escape", "/etc/passwd", "a/b", "u1"} {
		t.Run(userID, func(t *testing.T) {
			sh, err := NewShell(&fakeSelector{outcome: generatedOutcome()}, userID, runtime)
			require.NoError(t, err)

			assert.Equal(t, runtime, filepath.Dir(sh.ledgerPath))
			sh.Handle(context.Background(), "next")

			_, err = os.Stat(sh.ledgerPath)
			assert.NoError(t, err)
		})
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "runtime", entries[0].Name())
}

func TestShell_LedgerIsPerUser(t *testing.T) {
	dir := t.TempDir()
	a, err := NewShell(&fakeSelector{}, "alice", dir)
	require.NoError(t, err)
	b, err := NewShell(&fakeSelector{}, "bob", dir)
	require.NoError(t, err)

	assert.NotEqual(t, a.ledgerPath, b.ledgerPath)
}

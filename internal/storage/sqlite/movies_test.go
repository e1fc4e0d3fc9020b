package sqlite

import (
	"context"
	"testing"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoviesRepo_GetMovie(t *testing.T) {
	db := newTestDB(t)
	insertMovie(t, db, "m1", "Alien", 1979)
	insertMovie(t, db, "m2", "Untitled", 0)
	repo := NewMoviesRepo(db)
	ctx := context.Background()

	m, err := repo.GetMovie(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, core.Movie{ID: "m1", Title: "Alien", Year: 1979}, m)

	m, err = repo.GetMovie(ctx, "m2")
	require.NoError(t, err)
	assert.Zero(t, m.Year)

	_, err = repo.GetMovie(ctx, "nope")
	assert.ErrorIs(t, err, core.ErrMovieNotFound)
}

func TestUsersRepo_GetUser(t *testing.T) {
	db := newTestDB(t)
	insertMovie(t, db, "m1", "Alien", 1979)
	insertUser(t, db, "u1", "a@example.com", "m1")
	insertUser(t, db, "u2", "b@example.com", "")
	repo := NewUsersRepo(db)
	ctx := context.Background()

	u, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "m1", u.FavoriteMovieID)
	assert.Equal(t, "a@example.com", u.Email)

	u, err = repo.GetUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, u.FavoriteMovieID)

	_, err = repo.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestMoviesRepo_CreateMovie(t *testing.T) {
	db := newTestDB(t)
	repo := NewMoviesRepo(db)
	ctx := context.Background()

	m, err := repo.CreateMovie(ctx, "  The Matrix ", 1999)
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "The Matrix", m.Title)

	tests := []struct {
		name    string
		title   string
		year    int
		sameRow bool
	}{
		{"same title", "The Matrix", 1999, true},
		{"punctuation and case", "the matrix!", 1999, true},
		{"other year", "The Matrix", 2021, false},
		{"no year", "The Matrix", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CreateMovie(ctx, tt.title, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.sameRow, got.ID == m.ID)

			stored, err := repo.GetMovie(ctx, got.ID)
			require.NoError(t, err)
			assert.Equal(t, got, stored)
		})
	}

	again, err := repo.CreateMovie(ctx, "THE MATRIX", 0)
	require.NoError(t, err)
	noYear, err := repo.CreateMovie(ctx, "The Matrix", 0)
	require.NoError(t, err)
	assert.Equal(t, noYear.ID, again.ID, "NULL year still deduplicates")

	var normalized string
	require.NoError(t, db.QueryRow(`SELECT normalized_title FROM movies WHERE id = ?`, m.ID).Scan(&normalized))
	assert.Equal(t, "the matrix", normalized)

	_, err = repo.CreateMovie(ctx, " ?! ", 1999)
	assert.Error(t, err)
}

func TestUsersRepo_SaveUser(t *testing.T) {
	db := newTestDB(t)
	insertMovie(t, db, "m1", "Alien", 1979)
	insertMovie(t, db, "m2", "Heat", 1995)
	repo := NewUsersRepo(db)
	ctx := context.Background()

	u, err := repo.SaveUser(ctx, "Ripley", "Ripley@Example.com ", "m1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ripley@example.com", u.Email)
	assert.Equal(t, "m1", u.FavoriteMovieID)

	updated, err := repo.SaveUser(ctx, "Ellen Ripley", "ripley@example.com", "m2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, updated.ID)
	assert.Equal(t, "Ellen Ripley", updated.Name)
	assert.Equal(t, "m2", updated.FavoriteMovieID)

	cleared, err := repo.SaveUser(ctx, "Ellen Ripley", "ripley@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, cleared.FavoriteMovieID)

	got, err := repo.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, cleared, got)

	_, err = repo.SaveUser(ctx, "Ghost", "ghost@example.com", "missing-movie")
	assert.Error(t, err, "foreign keys are enforced")

	_, err = repo.SaveUser(ctx, "Nobody", "  ", "")
	assert.Error(t, err)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/normalize"
)

type MoviesRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewMoviesRepo(db *sql.DB) *MoviesRepo {
	return &MoviesRepo{db: db, now: time.Now}
}

func (r *MoviesRepo) GetMovie(ctx context.Context, id string) (core.Movie, error) {
	var (
		m    core.Movie
		year sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, title, year FROM movies WHERE id = ?`, id).
		Scan(&m.ID, &m.Title, &year)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Movie{}, core.ErrMovieNotFound
	}
	if err != nil {
		return core.Movie{}, fmt.Errorf("failed to get movie: %w", err)
	}
	m.Year = int(year.Int64)
	return m, nil
}

// CreateMovie returns the existing movie when the normalized title and year
// are already known, so "The Matrix" and "the matrix!" resolve to one row.
// A zero year is stored as NULL.
func (r *MoviesRepo) CreateMovie(ctx context.Context, title string, year int) (core.Movie, error) {
	title = strings.TrimSpace(title)
	normalized := normalize.Title(title)
	if normalized == "" {
		return core.Movie{}, errors.New("movie title is required")
	}

	yearArg := sql.NullInt64{Int64: int64(year), Valid: year != 0}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Movie{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		m       core.Movie
		yearCol sql.NullInt64
	)
	err = tx.QueryRowContext(ctx,
		`SELECT id, title, year FROM movies WHERE normalized_title = ? AND year IS ?`,
		normalized, yearArg,
	).Scan(&m.ID, &m.Title, &yearCol)
	switch {
	case err == nil:
		m.Year = int(yearCol.Int64)
		return m, nil
	case !errors.Is(err, sql.ErrNoRows):
		return core.Movie{}, fmt.Errorf("failed to look up movie: %w", err)
	}

	m = core.Movie{ID: uuid.NewString(), Title: title, Year: year}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO movies (id, title, normalized_title, year, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Title, normalized, yearArg, r.now().UTC().UnixNano(),
	)
	if err != nil {
		return core.Movie{}, fmt.Errorf("failed to create movie: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return core.Movie{}, fmt.Errorf("failed to commit movie: %w", err)
	}
	return m, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/factbot/internal/core"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) GetUser(ctx context.Context, id string) (core.User, error) {
	var (
		u        core.User
		favorite sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, favorite_movie_id FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &favorite)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	u.FavoriteMovieID = favorite.String
	return u, nil
}

// SaveUser creates a user or, when the email is taken, updates that user's
// name and favorite movie. An empty favoriteMovieID clears the favorite.
func (r *UsersRepo) SaveUser(ctx context.Context, name, email, favoriteMovieID string) (core.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return core.User{}, errors.New("user email is required")
	}

	var (
		u        core.User
		favorite sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, favorite_movie_id)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			name = excluded.name,
			favorite_movie_id = excluded.favorite_movie_id
		RETURNING id, name, email, favorite_movie_id`,
		uuid.NewString(), strings.TrimSpace(name), email, nullString(favoriteMovieID),
	).Scan(&u.ID, &u.Name, &u.Email, &favorite)
	if err != nil {
		return core.User{}, fmt.Errorf("failed to save user: %w", err)
	}
	u.FavoriteMovieID = favorite.String
	return u, nil
}

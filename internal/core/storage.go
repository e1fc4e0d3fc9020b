package core

import "context"

type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// FactRepository is the read/write path over persisted facts.
type FactRepository interface {
	// GetFactsByIDs returns the facts among ids; an empty ids yields no rows.
	GetFactsByIDs(ctx context.Context, ids []string) ([]Fact, error)
	// GetFactsForMovieExcluding returns up to limit facts of movieID not in excludeIDs.
	GetFactsForMovieExcluding(ctx context.Context, movieID string, excludeIDs []string, limit int, order SortOrder) ([]Fact, error)
	// GetFactByID returns ErrFactNotFound when no row matches.
	GetFactByID(ctx context.Context, id string) (Fact, error)
	// GetFactsForMovie returns up to limit facts, newest first.
	GetFactsForMovie(ctx context.Context, movieID string, limit int) ([]Fact, error)
	// CreateFact is idempotent on (movieID, key) when key is non-empty: the
	// existing row is returned instead of a duplicate or an error.
	CreateFact(ctx context.Context, movieID, text, key string, category Category) (Fact, error)
}

type MovieRepository interface {
	// GetMovie returns ErrMovieNotFound when no row matches.
	GetMovie(ctx context.Context, id string) (Movie, error)
}

type UserRepository interface {
	// GetUser returns ErrUserNotFound when no row matches.
	GetUser(ctx context.Context, id string) (User, error)
}

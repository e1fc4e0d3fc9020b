package core

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoFavorite       = errors.New("no favorite movie set")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrFactNotFound     = errors.New("fact not found")
)

package core

import (
	"strconv"
	"time"
)

const (
	AppName      = "FactBot"
	AppUserAgent = "FactBot/0.1"
	AppVersion   = "0.1.0"
)

// Category is one of a closed set of topical tags used to vary consecutive facts.
type Category string

const (
	CategoryAwards     Category = "awards"
	CategoryBoxOffice  Category = "box_office"
	CategoryProduction Category = "production"
	CategoryReception  Category = "reception"
	CategoryCasting    Category = "casting"
	CategoryDirection  Category = "direction"
	CategorySoundtrack Category = "soundtrack"
	CategoryFilming    Category = "filming"
	CategoryRelease    Category = "release"
	CategoryMisc       Category = "misc"
)

// AllCategories returns the closed category set in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryAwards,
		CategoryBoxOffice,
		CategoryProduction,
		CategoryReception,
		CategoryCasting,
		CategoryDirection,
		CategorySoundtrack,
		CategoryFilming,
		CategoryRelease,
		CategoryMisc,
	}
}

// IsValid reports whether c belongs to the closed set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Fact is an immutable statement about a movie. Key and Category are empty
// when unknown.
type Fact struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	Text      string    `json:"text"`
	Key       string    `json:"key,omitempty"`
	Category  Category  `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Movie is owned by an external collaborator; Year is zero when unknown.
type Movie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// DisplayTitle renders "Title (Year)" when the year is known.
func (m Movie) DisplayTitle() string {
	if m.Year == 0 {
		return m.Title
	}
	return m.Title + " (" + strconv.Itoa(m.Year) + ")"
}

type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	FavoriteMovieID string `json:"favorite_movie_id,omitempty"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat-completion turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

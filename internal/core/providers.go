package core

import "context"

// AIProvider is a chat-completion backend.
type AIProvider interface {
	Chat(ctx context.Context, history []Message) (Message, error)
}

// GenerateRequest describes one generation attempt for a movie.
type GenerateRequest struct {
	MovieTitle       string
	MovieYear        int
	AvoidKeys        []string
	PreferCategories []Category
}

// Candidate is a generated fact before acceptance. A failed generation is the
// zero Candidate: empty Text and Key, zero Confidence.
type Candidate struct {
	Text       string
	Key        string
	Category   Category
	Confidence float64
}

// Empty reports whether the candidate lacks the fields needed for acceptance.
func (c Candidate) Empty() bool {
	return c.Text == "" || c.Key == ""
}

// FactGenerator produces one candidate per call and never fails outward.
type FactGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) Candidate
}

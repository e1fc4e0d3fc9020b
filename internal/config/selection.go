package config

// SelectionConfig tunes the fact selection engine.
type SelectionConfig struct {
	StoredCandidateLimit int     `env:"FACTBOT_STORED_CANDIDATES" envDefault:"25" validate:"gte=1,lte=500"`
	HistoryLimit         int     `env:"FACTBOT_HISTORY_LIMIT" envDefault:"300" validate:"gte=1,lte=5000"`
	GenerationAttempts   int     `env:"FACTBOT_GENERATION_ATTEMPTS" envDefault:"4" validate:"gte=1,lte=10"`
	MinConfidence        float64 `env:"FACTBOT_MIN_CONFIDENCE" envDefault:"0.6" validate:"gte=0,lte=1"`
}

func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		StoredCandidateLimit: 25,
		HistoryLimit:         300,
		GenerationAttempts:   4,
		MinConfidence:        0.6,
	}
}

func (s SelectionConfig) GetStoredCandidateLimit() int { return s.StoredCandidateLimit }
func (s SelectionConfig) GetHistoryLimit() int         { return s.HistoryLimit }
func (s SelectionConfig) GetGenerationAttempts() int   { return s.GenerationAttempts }
func (s SelectionConfig) GetMinConfidence() float64    { return s.MinConfidence }

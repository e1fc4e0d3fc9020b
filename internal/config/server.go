package config

import "time"

type ServerConfig struct {
	ListenAddr     string        `env:"FACTBOT_LISTEN_ADDR" envDefault:":8080" validate:"required"`
	SessionSecret  string        `env:"FACTBOT_SESSION_SECRET" mask:"true" validate:"omitempty,min=32"`
	SessionTTL     time.Duration `env:"FACTBOT_SESSION_TTL" envDefault:"24h" validate:"gt=0"`
	SecureCookies  bool          `env:"FACTBOT_SECURE_COOKIES" envDefault:"false"`
	RequestTimeout time.Duration `env:"FACTBOT_REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	RateLimit      int           `env:"FACTBOT_RATE_LIMIT" envDefault:"60" validate:"gte=0"`
	RateWindow     time.Duration `env:"FACTBOT_RATE_WINDOW" envDefault:"1m" validate:"gt=0"`
}

func (s ServerConfig) GetSessionSecret() string     { return s.SessionSecret }
func (s ServerConfig) GetSessionTTL() time.Duration { return s.SessionTTL }

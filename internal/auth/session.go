// Package auth issues and verifies the signed session tokens that identify a user.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sandevgo/factbot/internal/core"
)

const SessionCookieName = "session"

var (
	ErrMissingSecret  = errors.New("session secret is not configured")
	ErrInvalidSession = errors.New("invalid session token")
)

type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(cfg core.SessionConfig) (*Sessions, error) {
	if cfg.GetSessionSecret() == "" {
		return nil, ErrMissingSecret
	}
	return &Sessions{
		secret: []byte(cfg.GetSessionSecret()),
		ttl:    cfg.GetSessionTTL(),
		now:    time.Now,
	}, nil
}

// Issue signs an HS256 token whose subject is userID.
func (s *Sessions) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    core.AppName,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Verify returns the user id carried by a valid, unexpired token.
func (s *Sessions) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(core.AppName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidSession)
	}
	return claims.Subject, nil
}

// UserID extracts the session from the session cookie or a Bearer header.
// It returns "" when the request carries no valid session.
func (s *Sessions) UserID(r *http.Request) string {
	token := ""
	if c, err := r.Cookie(SessionCookieName); err == nil {
		token = c.Value
	}
	if token == "" {
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	if token == "" {
		return ""
	}

	userID, err := s.Verify(token)
	if err != nil {
		return ""
	}
	return userID
}

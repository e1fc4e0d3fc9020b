package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newSessions(t *testing.T) *Sessions {
	t.Helper()

	s, err := NewSessions(config.ServerConfig{SessionSecret: testSecret, SessionTTL: time.Hour})
	require.NoError(t, err)
	return s
}

func TestNewSessions_RequiresSecret(t *testing.T) {
	_, err := NewSessions(config.ServerConfig{SessionTTL: time.Hour})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestSessions_IssueVerify(t *testing.T) {
	s := newSessions(t)

	token, err := s.Issue("u1")
	require.NoError(t, err)

	userID, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = s.Issue("")
	assert.Error(t, err)
}

func TestSessions_VerifyRejects(t *testing.T) {
	s := newSessions(t)
	valid, err := s.Issue("u1")
	require.NoError(t, err)

	expired := newSessions(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("u1")
	require.NoError(t, err)

	other, err := NewSessions(config.ServerConfig{SessionSecret: "ffffffffffffffffffffffffffffffff", SessionTTL: time.Hour})
	require.NoError(t, err)
	foreign, err := other.Issue("u1")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: expiredToken},
		{name: "other secret", token: foreign},
		{name: "alg none", token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestSessions_UserID(t *testing.T) {
	s := newSessions(t)
	token, err := s.Issue("u1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
	}{
		{name: "anonymous", prepare: func(r *http.Request) {}, want: ""},
		{name: "cookie", prepare: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		}, want: "u1"},
		{name: "bearer", prepare: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		}, want: "u1"},
		{name: "invalid bearer", prepare: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer nope")
		}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(r)
			assert.Equal(t, tt.want, s.UserID(r))
		})
	}
}

// Package session turns the bearer token issued by the upstream login into
// an explicit session with an expiry.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when no bearer token is present
	ErrMissingToken = errors.New("missing bearer token")
	// ErrMalformedToken is returned when the token cannot be parsed
	ErrMalformedToken = errors.New("malformed session token")
	// ErrExpired is returned for a token whose exp claim is in the past
	ErrExpired = errors.New("session expired")
)

// Session is an authenticated upstream session
type Session struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

// Parse builds a session from a token. The signature is not verified since
// the upstream service owns the signing key and rejects forged tokens itself.
func Parse(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	s := &Session{
		Token:   token,
		Subject: subject(claims),
	}
	if exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}

// subject reads the sub claim. Some upstream accounts carry a numeric user
// id there instead of a string.
func subject(claims jwt.MapClaims) string {
	switch sub := claims["sub"].(type) {
	case nil:
		return ""
	case string:
		return sub
	case float64:
		return strconv.FormatFloat(sub, 'f', -1, 64)
	default:
		return fmt.Sprint(sub)
	}
}

// FromHeader parses the session from an Authorization header value
func FromHeader(header string) (*Session, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrMissingToken
	}
	return Parse(parts[1])
}

// Expired reports whether the session has expired at now. A session without
// an expiry never expires.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}

// Validate returns ErrExpired if the session has expired at now
func (s *Session) Validate(now time.Time) error {
	if s.Expired(now) {
		return ErrExpired
	}
	return nil
}

// Owner identifies the account behind the session, used to scope per-user
// caches. It falls back to the token when there is no subject claim.
func (s *Session) Owner() string {
	if s.Subject != "" {
		return s.Subject
	}
	return s.Token
}

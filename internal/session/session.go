// Package session derives the signed-in user from the stored bearer token.
// The token is decoded without signature verification: the backend is the
// authority, the client only needs the claims for display and routing.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired is returned when the stored access token is past its expiry.
var ErrExpired = errors.New("access token expired")

// ErrNoSession is returned when no token pair is stored.
var ErrNoSession = errors.New("no stored session")

// Session is the decoded view of an access token. It is recomputed from the
// stored token on every start and never persisted on its own.
type Session struct {
	UserID       string
	Email        string
	FullName     string
	Roles        []string
	Permissions  []string
	ExpiresAt    time.Time
	AccessToken  string
	RefreshToken string
}

// HasRole reports whether the session carries the given role authority,
// e.g. "ROLE_ADMIN" or "ROLE_ORGANIZER".
func (s *Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Decode extracts a session from an access token. The signature is not
// checked; a malformed payload is an error.
func Decode(accessToken string) (*Session, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims shape")
	}

	s := &Session{
		UserID:      stringClaim(claims, "id"),
		Email:       stringClaim(claims, "sub"),
		FullName:    stringClaim(claims, "fullName"),
		AccessToken: accessToken,
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}

	// Roles arrive as [{"authority": "ROLE_X"}, ...]; anything else in the
	// list is skipped.
	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, entry := range raw {
			m, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			if authority, ok := m["authority"].(string); ok {
				s.Roles = append(s.Roles, authority)
			}
		}
	}

	if raw, ok := claims["permissions"].([]interface{}); ok {
		for _, entry := range raw {
			if p, ok := entry.(string); ok {
				s.Permissions = append(s.Permissions, p)
			}
		}
	}

	return s, nil
}

// Resume loads the stored token pair and decodes it into a session. The
// store is cleared wholesale on decode failure or expiry, matching logout.
func Resume(store *Store, now time.Time) (*Session, error) {
	access, refresh, err := store.Load()
	if err != nil {
		return nil, err
	}

	s, err := Decode(access)
	if err != nil {
		_ = store.Clear()
		return nil, err
	}
	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now) {
		_ = store.Clear()
		return nil, ErrExpired
	}

	s.RefreshToken = refresh
	return s, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// Package session keeps the client's last-issued token on disk and exposes
// its decoded claims as the local notion of "who is logged in".
//
// Decoding is deliberately unverified: the client holds no signing key and
// treats the claims as presentation-layer state only. The server re-validates
// on every protected request, so a tampered or expired token is held happily
// here and rejected on the next round trip.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goliatone/go-tasks/auth"
)

// Store owns the token file. Nothing else reads or writes it; login, signup,
// and logout all flow through Replace and Clear.
type Store struct {
	path    string
	token   string
	current *auth.JWTClaims
}

// NewStore creates a store backed by the given file path and loads whatever
// session the file holds. An absent or undecodable token yields no session.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	token := strings.TrimSpace(string(raw))
	if claims, err := decode(token); err == nil {
		s.token = token
		s.current = claims
	}

	return s, nil
}

// Current returns the decoded session claims, or nil when logged out.
func (s *Store) Current() *auth.JWTClaims {
	return s.current
}

// Token returns the raw token for the Authorization header.
func (s *Store) Token() string {
	return s.token
}

// Replace swaps the whole session for the one the given token encodes and
// persists the raw token. The previous session is discarded wholesale.
func (s *Store) Replace(token string) error {
	claims, err := decode(token)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}

	s.token = token
	s.current = claims
	return nil
}

// Clear drops the session and removes the stored token.
func (s *Store) Clear() error {
	s.token = ""
	s.current = nil

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// decode parses the token payload without checking signature or expiry.
func decode(token string) (*auth.JWTClaims, error) {
	claims := &auth.JWTClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

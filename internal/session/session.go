// Package session maps signed session tokens to user identities. The store is
// process-wide state: entries appear at login and disappear at logout, account
// deletion, or lazily once expired.
package session

import (
	"fmt"
	"sync"
	"time"

	jwtgo "github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	tokenIssuer "todoer/pkg/jwt"
)

type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwtgo.Token
	Sign(token *jwtgo.Token) (string, error)
	Validate(token string) (jwtgo.MapClaims, error)
}

type entry struct {
	userID    uint
	expiresAt time.Time
}

type Store struct {
	mu     sync.RWMutex
	active map[string]entry
	issuer TokenIssuer
	ttl    time.Duration
}

func NewStore(issuer TokenIssuer, ttl time.Duration) *Store {
	return &Store{
		active: make(map[string]entry),
		issuer: issuer,
		ttl:    ttl,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Issue signs a fresh token for the user and records it as active.
func (s *Store) Issue(userID uint) (string, error) {
	token := s.issuer.Generate(tokenIssuer.TokenInfo{
		Subject:    userID,
		TokenID:    uuid.NewString(),
		Expiration: s.ttl,
	})

	signed, err := s.issuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	s.mu.Lock()
	s.active[signed] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return signed, nil
}

// Resolve returns the identity behind a token. Unknown, revoked, expired and
// tampered tokens all resolve to false; expired entries are dropped here since
// there is no background sweeper.
func (s *Store) Resolve(token string) (uint, bool) {
	s.mu.RLock()
	e, ok := s.active[token]
	s.mu.RUnlock()

	if !ok {
		return 0, false
	}

	if time.Now().After(e.expiresAt) {
		s.Revoke(token)
		return 0, false
	}

	if _, err := s.issuer.Validate(token); err != nil {
		s.Revoke(token)
		return 0, false
	}

	return e.userID, true
}

func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}

// RevokeUser drops every session of a user, for account deletion.
func (s *Store) RevokeUser(userID uint) {
	s.mu.Lock()
	for token, e := range s.active {
		if e.userID == userID {
			delete(s.active, token)
		}
	}
	s.mu.Unlock()
}

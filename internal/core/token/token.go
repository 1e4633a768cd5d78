// Package token issues and verifies the signed session tokens that carry
// identity between requests. Tokens are HS256 JWTs with a fixed TTL; all
// verification failures collapse into domain.ErrInvalidToken so callers
// cannot distinguish a forged token from an expired one.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roamly/booking-api/internal/core/domain"
)

// DefaultTTL is the session lifetime applied when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// ErrNoSecret is returned by New when the signing secret is empty. An empty
// secret is a fatal misconfiguration, never a silent pass-through.
var ErrNoSecret = errors.New("token: signing secret is not configured")

// Claims is the minimal claim set embedded in a session token. Role and
// email are convenience claims only; privileged reads resolve the live
// record from the credential store instead of trusting them.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Service signing with secret. TTL defaults to DefaultTTL
// when non-positive. Fails with ErrNoSecret for an empty secret.
func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL reports the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue mints a signed token for the given user.
func (s *Service) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates raw. Signature mismatch, malformed structure
// and expiry all yield domain.ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

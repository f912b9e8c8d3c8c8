package upstream

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// Session is the explicit session object injected into every upstream
// call: the bearer token forwarded by the browser, its parsed claims, and
// an invalidation signal that fires once when the upstream rejects the
// token or its expiry passes.
type Session struct {
	token     string
	claims    *models.SessionClaims
	requestID string

	once        sync.Once
	invalidated chan struct{}
}

// SessionParser validates forwarded bearer tokens against the shared SGI
// signing secret.
type SessionParser struct {
	secret []byte
	leeway time.Duration
}

// NewSessionParser builds a parser for the configured secret.
func NewSessionParser(secret string, leeway time.Duration) *SessionParser {
	return &SessionParser{secret: []byte(secret), leeway: leeway}
}

// Parse verifies the token signature and expiry. Expired tokens are
// rejected locally with SESSION_EXPIRED before any upstream round trip.
func (p *SessionParser) Parse(token, requestID string) (*Session, error) {
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return p.secret, nil
	}, jwt.WithLeeway(p.leeway))
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.ErrSessionExpired
		}
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid bearer token")
	}
	return &Session{
		token:       token,
		claims:      claims,
		requestID:   requestID,
		invalidated: make(chan struct{}),
	}, nil
}

// Token returns the raw bearer token.
func (s *Session) Token() string { return s.token }

// Claims returns the parsed token payload.
func (s *Session) Claims() *models.SessionClaims { return s.claims }

// RequestID returns the correlation ID forwarded upstream.
func (s *Session) RequestID() string { return s.requestID }

// Invalidate fires the session-expired signal exactly once.
func (s *Session) Invalidate() {
	s.once.Do(func() {
		if s.invalidated != nil {
			close(s.invalidated)
		}
	})
}

// Invalidated exposes the signal channel; it is closed when the session
// has been rejected.
func (s *Session) Invalidated() <-chan struct{} { return s.invalidated }

// Expired reports whether the token's expiry has already passed.
func (s *Session) Expired(now time.Time) bool {
	if s.claims == nil || s.claims.ExpiresAt == nil {
		return false
	}
	return now.After(s.claims.ExpiresAt.Time)
}

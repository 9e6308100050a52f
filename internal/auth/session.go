package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperr "vidchat/internal/errors"
)

// DefaultSessionTTL is how long an issued session token stays valid.
const DefaultSessionTTL = 24 * time.Hour

// Claims is the payload of a session token.
type Claims struct {
	UserID uint `json:"userid"`
	jwt.RegisteredClaims
}

// Session is the verified content of a token.
type Session struct {
	UserID    uint
	ExpiresAt time.Time
}

// SessionService issues and verifies HS256 session tokens.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a session service with the given secret and lifetime.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for userID expiring one TTL from now.
func (s *SessionService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry against the service clock.
func (s *SessionService) Verify(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, apperr.ErrInvalidToken
	}

	// Expiry is checked below against s.now so the result depends only on
	// the token and the injected clock.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.UserID == 0 {
		return nil, apperr.ErrInvalidToken
	}
	if s.now().After(claims.ExpiresAt.Time) {
		return nil, apperr.ErrExpiredToken
	}

	return &Session{UserID: claims.UserID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

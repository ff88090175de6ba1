package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kusasa/backend/config"
)

const issuer = "kusasa"

// SessionTokens issues and validates the bearer tokens that identify a session
type SessionTokens struct {
	secretKey []byte
	ttl       time.Duration
}

// Claims represents session token claims
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionTokens creates a token service; tokens live as long as an idle session
func NewSessionTokens(cfg *config.Config) *SessionTokens {
	return &SessionTokens{
		secretKey: []byte(cfg.SessionSecret),
		ttl:       time.Duration(cfg.SessionTTLMinutes) * time.Minute,
	}
}

// Issue generates a token for a session
func (s *SessionTokens) Issue(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// Validate validates a token and returns its claims
func (s *SessionTokens) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// NeedsRefresh reports whether a token is past half its lifetime
func (s *SessionTokens) NeedsRefresh(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return time.Until(claims.ExpiresAt.Time) < s.ttl/2
}

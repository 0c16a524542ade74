package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ticketsla/ticketsla/internal/shared/biztime"
)

const sessionTokenIssuer = "ticketsla"

// SessionClaims is the payload of the session cookie. It only references the
// server-side session; the session record remains the source of truth.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies session cookies with HS256.
type SessionTokenService struct {
	secret []byte
}

func NewSessionTokenService(secret string) *SessionTokenService {
	return &SessionTokenService{secret: []byte(secret)}
}

// Sign issues a token for sessionID that expires at expiresAt.
func (s *SessionTokenService) Sign(sessionID, username string, expiresAt time.Time) (string, error) {
	now := biztime.NowUTC()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the claims.
func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(sessionTokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// SessionID verifies tokenString and returns the session it refers to.
func (s *SessionTokenService) SessionID(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

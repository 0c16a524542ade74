package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, h.Verify("correct horse", hash))
	assert.Error(t, h.Verify("wrong horse", hash))
	assert.Error(t, h.Verify("correct horse", "not-a-hash"))

	// does not panic and does not match anything
	h.CompareDummy("anything")
}

func TestNewBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestSessionTokenService_RoundTrip(t *testing.T) {
	svc := NewSessionTokenService("secret")

	token, err := svc.Sign("sess-1", "alice", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "alice", claims.Subject)

	id, err := svc.SessionID(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", id)

	_, err = NewSessionTokenService("other").SessionID(token)
	assert.Error(t, err)
}

func TestSessionTokenService_Rejects(t *testing.T) {
	svc := NewSessionTokenService("secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewSessionTokenService("other").Sign("sess-1", "alice", time.Now().Add(time.Hour))
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.Sign("sess-1", "alice", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &SessionClaims{
			SessionID: "sess-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    sessionTokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("missing session id", func(t *testing.T) {
		token, err := svc.Sign("", "alice", time.Now().Add(time.Hour))
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})
}

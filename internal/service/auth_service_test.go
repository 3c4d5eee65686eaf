package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService("admin@example.com", string(hash), "test-secret", time.Hour)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Login(context.Background(), "admin@example.com", "hunter2secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "admin@example.com", claims.Subject)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login(context.Background(), "other@example.com", "hunter2secret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

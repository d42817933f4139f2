package service

import (
	"testing"
	"time"

	"coin-ledger/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, 24*time.Hour, "coin-ledger")

	tokenStr, expiresAt, err := svc.Generate("root", domain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "root", claims.AccountID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestJWTTokenService_Rejects(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "coin-ledger")

	expired, _, err := NewJWTTokenService(testJWTSecret, -time.Hour, "coin-ledger").Generate("alice", domain.RoleTrader)
	require.NoError(t, err)
	otherSecret, _, err := NewJWTTokenService("another-secret", time.Hour, "coin-ledger").Generate("alice", domain.RoleTrader)
	require.NoError(t, err)
	otherIssuer, _, err := NewJWTTokenService(testJWTSecret, time.Hour, "someone-else").Generate("alice", domain.RoleTrader)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "coin-ledger",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": otherSecret,
		"wrong issuer": otherIssuer,
		"alg none":     none,
		"garbage":      "not.a.jwt",
		"empty":        "",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Validate(tok)
			assert.Error(t, err)
		})
	}
}

func TestJWTTokenService_UnknownRoleFallsBackToTrader(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "coin-ledger")

	tokenStr, _, err := svc.Generate("alice", domain.Role("superuser"))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTrader, claims.Role)
}

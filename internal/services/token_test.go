package services

import (
	"testing"

	"devconnect-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(), testConfig())
	userID := uuid.New()

	token, err := svc.signToken(userID)
	require.NoError(t, err)

	got, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(), testConfig())
	other := NewUserService(newFakeUserRepo(), &config.Config{JWTSecret: "wrong-secret", JWTExpiryHours: 10})

	token, err := svc.signToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	expired := NewUserService(newFakeUserRepo(), &config.Config{JWTSecret: "test-secret", JWTExpiryHours: -1})

	token, err := expired.signToken(uuid.New())
	require.NoError(t, err)

	_, err = expired.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(), testConfig())

	_, err := svc.ParseToken("not.a.jwt")
	require.Error(t, err)

	_, err = svc.ParseToken("")
	require.Error(t, err)
}

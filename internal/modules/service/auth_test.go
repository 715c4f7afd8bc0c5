package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthLoginVerifyLogout(t *testing.T) {
	svc := NewAuthService("hunter2", zap.NewNop())

	_, err := svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.False(t, svc.Verify("made-up-token"))

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.Verify(token))

	// Each login issues an independent token.
	token2, err := svc.Login("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)

	svc.Logout(token)
	assert.False(t, svc.Verify(token))
	assert.True(t, svc.Verify(token2), "revoking one token leaves others valid")

	// Logout is idempotent.
	svc.Logout(token)
	assert.False(t, svc.Verify(token))
}

func TestAuthEmptyPasswordLocksOut(t *testing.T) {
	svc := NewAuthService("", zap.NewNop())
	_, err := svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

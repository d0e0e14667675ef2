package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welbinator/therepo/internal/config"
)

func TestNonce_RoundTrip(t *testing.T) {
	config.Current.JWTSecret = "test-secret"

	token, err := CreateNonce(ActionSubmitListing, 7)
	require.NoError(t, err)

	assert.NoError(t, VerifyNonce(token, ActionSubmitListing, 7))
	assert.ErrorIs(t, VerifyNonce(token, ActionEditListing, 7), ErrInvalidNonce)
	assert.ErrorIs(t, VerifyNonce(token, ActionSubmitListing, 8), ErrInvalidNonce)
	assert.ErrorIs(t, VerifyNonce("garbage", ActionSubmitListing, 7), ErrInvalidNonce)
}

func TestNonce_WrongSecret(t *testing.T) {
	config.Current.JWTSecret = "test-secret"
	token, err := CreateNonce(ActionEditListing, 1)
	require.NoError(t, err)

	config.Current.JWTSecret = "other-secret"
	assert.ErrorIs(t, VerifyNonce(token, ActionEditListing, 1), ErrInvalidNonce)
}

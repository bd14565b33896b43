package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tumy/config"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateAdminToken("admin", time.Minute)
	require.NoError(t, err)

	subject, err := ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ValidateAdminToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateAdminTokenRejectsExpired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateAdminToken("admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestValidateAdminTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateAdminToken("admin", time.Minute)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devconnect/devconnect/config"
)

func init() {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", "Alice", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("definitely-not-a-jwt")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("user-42", "Alice", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

package security_test

import (
	"testing"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService := security.NewJWTService(&config.JWTConfig{
		SecretKey: "test-secret",
		TokenTTL:  "168h",
	})

	user := &model.User{ID: 5, Email: "user@example.com"}

	token, err := jwtService.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "donation-web-server", claims.Issuer)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := security.NewJWTService(&config.JWTConfig{
		SecretKey: "test-secret",
		TokenTTL:  "-1h",
	})

	token, err := jwtService.GenerateToken(&model.User{ID: 5, Email: "user@example.com"})
	assert.NoError(t, err)

	claims, err := jwtService.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer := security.NewJWTService(&config.JWTConfig{SecretKey: "secret-a", TokenTTL: "168h"})
	verifier := security.NewJWTService(&config.JWTConfig{SecretKey: "secret-b", TokenTTL: "168h"})

	token, err := signer.GenerateToken(&model.User{ID: 5, Email: "user@example.com"})
	assert.NoError(t, err)

	claims, err := verifier.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_BadTTLConfig(t *testing.T) {
	jwtService := security.NewJWTService(&config.JWTConfig{
		SecretKey: "test-secret",
		TokenTTL:  "not-a-duration",
	})

	token, err := jwtService.GenerateToken(&model.User{ID: 5, Email: "user@example.com"})
	assert.Error(t, err)
	assert.Empty(t, token)
}

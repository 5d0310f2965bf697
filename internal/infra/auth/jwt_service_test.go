package auth

import (
	"testing"
	"time"

	"exalum/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()

	accessToken, err := jwtService.GenerateAccessToken(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	token, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	assert.NoError(t, err)
	assert.NotNil(t, token)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, accountID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	token, err := jwtService.ValidateToken(invalidToken, cfg.SecretKey.Access)
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	accessToken, err := jwtService.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = jwtService.ValidateToken(accessToken, "a_completely_different_secret")
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Default lifetime when the config leaves it unset
	assert.Equal(t, time.Hour*8, jwtService.AccessTokenDuration())

	cfg.SecretKey.AccessTTL = time.Minute * 30
	jwtService, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Minute*30, jwtService.AccessTokenDuration())
}

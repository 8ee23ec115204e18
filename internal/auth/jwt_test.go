package auth

import (
	"testing"

	"github.com/piddash/pidgen/internal/config"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJwt() *JWT {
	return NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)
}

func testPayload() JWTPayload {
	return JWTPayload{
		ID:       "id1234",
		Username: "admin1",
		Email:    "admin1@example.com",
		Role:     constant.RoleAdmin,
	}
}

// Perform token generation and verify the generated token to ensure VerifyJwtToken is correct
func TestGenerateAndVerify(t *testing.T) {
	jwtService := testJwt()

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(testPayload())
	require.NoError(t, err)
	require.NotNil(t, refreshToken)
	require.NotNil(t, accessToken)

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken, constant.JWT_TYPE_ACCESS)
	require.NoError(t, err)
	assert.Equal(t, "admin1", accessClaims.User.Username)
	assert.Equal(t, constant.RoleAdmin, accessClaims.User.Role)

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken, constant.JWT_TYPE_REFRESH)
	require.NoError(t, err)
	assert.Equal(t, constant.JWT_TYPE_REFRESH, refreshClaims.Type)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	jwtService := testJwt()

	refreshToken, _, err := jwtService.GenerateRefreshAndAccessToken(testPayload())
	require.NoError(t, err)

	_, err = jwtService.VerifyJwtToken(*refreshToken, constant.JWT_TYPE_ACCESS)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	_, accessToken, err := testJwt().GenerateRefreshAndAccessToken(testPayload())
	require.NoError(t, err)

	other := NewJwt(config.AuthConfig{JWT_SECRET: "different-secret"}, nil)
	_, err = other.VerifyJwtToken(*accessToken, constant.JWT_TYPE_ACCESS)
	assert.Error(t, err)
}

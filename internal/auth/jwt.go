package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/piddash/pidgen/internal/config"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/util"
	"go.uber.org/zap"
)

const (
	refreshTokenDuration = 7 * 24 * time.Hour
	accessTokenDuration  = 15 * time.Minute
)

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
}

type JWTInterface interface {
	GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error)
	VerifyJwtToken(token string, tokenType string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &JWT{
		jwtSecret: cfg.JWT_SECRET,
		logger:    logger,
	}
}

type JWTPayload struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Role     constant.Role `json:"role"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	Type string     `json:"type"`
	IAT  int64      `json:"iat"`
	EXP  int64      `json:"exp"`
}

func (j JWT) signToken(payload JWTPayload, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user": payload,
		"type": tokenType,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.jwtSecret))
}

// Return refreshToken, accessToken, error
func (j JWT) GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error) {
	j.logger.Debugf("Generate refresh and access token for user: %s", payload.Username)

	refreshToken, err := j.signToken(payload, constant.JWT_TYPE_REFRESH, refreshTokenDuration)
	if err != nil {
		return nil, nil, err
	}

	accessToken, err := j.signToken(payload, constant.JWT_TYPE_ACCESS, accessTokenDuration)
	if err != nil {
		return nil, nil, err
	}

	return &refreshToken, &accessToken, nil
}

// VerifyJwtToken checks the signature, expiry and token type. Passing a
// refresh token where an access token is expected is rejected even though
// both are signed with the same secret.
func (j JWT) VerifyJwtToken(token string, tokenType string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	})
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	claimType, _ := claims["type"].(string)
	if claimType != tokenType {
		return nil, fmt.Errorf("expected %s token, got %q", tokenType, claimType)
	}

	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid token: user field is missing or malformed")
	}

	id, _ := user["id"].(string)
	username, _ := user["username"].(string)
	email, _ := user["email"].(string)
	role, _ := user["role"].(string)

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	return &JWTClaims{
		User: JWTPayload{
			ID:       id,
			Username: username,
			Email:    email,
			Role:     constant.Role(role),
		},
		Type: claimType,
		IAT:  int64(iat),
		EXP:  int64(exp),
	}, nil
}

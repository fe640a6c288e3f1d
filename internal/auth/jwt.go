package auth

import (
	"fmt"
	"time"

	"stellarforge/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

const operatorRole = "admin"

// GenerateJWT mints a token for the operator account. There is no
// per-user signing key: every deployment has one operator, so the token
// only needs to carry its username and role.
func GenerateJWT(username string) (string, time.Time, error) {
	cfg := config.GlobalConfig

	expiresAt := time.Now().Add(cfg.Auth.TokenExpiration)
	claims := Claims{
		Username: username,
		Role:     operatorRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateJWT parses and verifies a token minted by GenerateJWT.
func ValidateJWT(tokenString string) (*Claims, error) {
	cfg := config.GlobalConfig

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

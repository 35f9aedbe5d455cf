package auth

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"swapi-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeWrite grants access to mutating requests.
const ScopeWrite = "write"

const minSecretLength = 32

type Claims struct {
	Client string   `json:"client"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScope reports whether the token was minted with scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

func getJWTSecret(cfg config.AuthConfig) ([]byte, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters long", minSecretLength)
	}
	return []byte(cfg.JWTSecret), nil
}

// GenerateJWT mints an HS256 token for an API client.
func GenerateJWT(cfg config.AuthConfig, client string, scopes []string, now time.Time) (string, error) {
	secret, err := getJWTSecret(cfg)
	if err != nil {
		return "", fmt.Errorf("cannot generate JWT: %w", err)
	}

	client = strings.TrimSpace(client)
	if client == "" {
		return "", fmt.Errorf("cannot generate JWT: client name is required")
	}

	claims := Claims{
		Client: client,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   "client_" + client,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateJWT(cfg config.AuthConfig, tokenString string) (*Claims, error) {
	secret, err := getJWTSecret(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot validate JWT: %w", err)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ApiSecret returns the JWT signing key from API_SECRET.
func ApiSecret() []byte {
	return []byte(os.Getenv("API_SECRET"))
}

// GenerateToken mints a 24h token carrying the given role.
func GenerateToken(role string) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ApiSecret())
}

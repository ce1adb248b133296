package utils

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"os"
	"time"
)

var jwtKey []byte

// signingKey resolves the secret lazily so godotenv has loaded before first use.
func signingKey() []byte {
	if len(jwtKey) == 0 {
		jwtKey = []byte(os.Getenv("JWT_SECRET"))
	}
	return jwtKey
}

type Claims struct {
	BusinessID string `json:"business_id"`
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func CreateToken(businessID uuid.UUID, role string) (string, error) {
	claims := &Claims{
		BusinessID: businessID.String(),
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

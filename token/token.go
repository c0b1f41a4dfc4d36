package token

import (
	"errors"
	"fmt"
	"time"

	"eventify-backend/config"

	"github.com/dgrijalva/jwt-go"
	"github.com/spf13/viper"
)

const validity = 30 * 24 * time.Hour

var (
	// ErrNoSecret means JWT_SECRET is absent. Issuance must abort rather than
	// sign with an empty key.
	ErrNoSecret = errors.New("token: JWT_SECRET is missing from environment")

	// ErrInvalidToken covers expired, tampered and malformed tokens alike.
	ErrInvalidToken = errors.New("token: invalid token")
)

// Service issues and verifies the bearer tokens that encode a user identity.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Issue signs a 30-day HS256 token carrying the user id.
func (s *Service) Issue(userID string) (string, error) {
	secret := viper.GetString(config.JWTSecret)
	if secret == "" {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(validity).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("issue: error signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the encoded user id.
func (s *Service) Verify(tokenString string) (string, error) {
	secret := viper.GetString(config.JWTSecret)
	if secret == "" {
		return "", ErrNoSecret
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("verify: unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

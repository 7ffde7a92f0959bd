// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is what an admin session token carries. ID (jti) is unique
// per sign-in so a single session can be revoked.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Generate JWT secret key (run once initially)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken signs an HS256 session token for an admin.
func GenerateToken(secret, adminID, email string, ttl time.Duration) (string, *SessionClaims, error) {
	if secret == "" {
		return "", nil, errors.New("JWT_SECRET not set")
	}
	now := time.Now()
	claims := &SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken strips an optional "Bearer " prefix from an Authorization header.
func BearerToken(header string) string {
	if len(header) > 7 && strings.ToUpper(header[0:6]) == "BEARER" {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(header)
}

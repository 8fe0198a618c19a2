// Package jwthelper issues and verifies the signed session tokens carried in
// the Authorization header.
package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL bounds every session. There is no refresh flow: after expiry the
// client logs in again.
const TokenTTL = 30 * time.Minute

var (
	ErrTokenExpired = errors.New("jwthelper: token expired")
	ErrInvalidToken = errors.New("jwthelper: invalid token")
)

// Claims is the decoded identity assertion embedded in a session token.
type Claims struct {
	UserID  uint `json:"uid"`
	IsAdmin bool `json:"adm"`

	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given user, valid for TokenTTL.
func GenerateToken(signingKey []byte, userID uint, isAdmin bool) (string, error) {
	return GenerateTokenWithTTL(signingKey, userID, isAdmin, TokenTTL)
}

// GenerateTokenWithTTL signs a token with a caller-chosen lifetime. Tests use
// it to mint already-expired tokens.
func GenerateTokenWithTTL(signingKey []byte, userID uint, isAdmin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of a session token and returns
// its claims. Expiry is reported as ErrTokenExpired, every other defect as
// ErrInvalidToken.
func ParseToken(signingKey []byte, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

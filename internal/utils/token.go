package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by ParseAccessToken for any token that cannot
// be trusted: bad signature, wrong algorithm, malformed payload or expired.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken signs an HS256 JWT carrying the user id (sub) and role.
//
// When ttlMin is zero or negative no exp claim is set and the token stays
// valid for as long as the signing secret does. That matches the source
// system's process-lifetime trust model; expiry is opt-in via configuration
// rather than silently imposed. Known limitation: without an exp claim there
// is no way to invalidate an issued token short of rotating the secret.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
	}
	if ttlMin > 0 {
		claims["exp"] = now.Add(time.Duration(ttlMin) * time.Minute).Unix()
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies the signature of raw and extracts the user id and
// role from its claims. The role travels only inside the signed payload; it
// is never read from a request body or header, which is what makes the role
// middleware trustworthy.
func ParseAccessToken(secret, raw string) (uint64, string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 0 {
		return 0, "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return uint64(sub), role, nil
}

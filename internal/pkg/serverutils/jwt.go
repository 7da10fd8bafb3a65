package serverutils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"thrapy-be/internal/pkg/apperror"
)

// Token signing uses a fixed secret and algorithm. Known hardening gap,
// preserved deliberately; see DESIGN.md.
const (
	jwtSecret     = "thrapy_secret_key_2024"
	tokenLifetime = 7 * 24 * time.Hour
)

// IssueToken signs a bearer token with subject = userId, valid for 7 days.
func IssueToken(userId string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ResolveToken verifies signature and expiry and returns the subject user id.
func ResolveToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", apperror.Auth("Invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", apperror.Auth("Invalid token")
	}
	return subject, nil
}

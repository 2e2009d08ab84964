package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"testing"
	"time"
)

func mustSignRaw(t *testing.T, j *JWT, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(j.key)
	if err != nil {
		t.Fatalf("sign raw token: %v", err)
	}
	return token
}

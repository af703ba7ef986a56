package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/whitebay/backoffice/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify an operator of the back-office.
type Claims struct {
	Subject string
	Email   string
	Role    models.StaffRole
}

// Issue signs an HS256 access token for c valid for ttl.
func Issue(secret string, c Claims, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        c.Subject,
		"email":      c.Email,
		"role":       string(c.Role),
		"token_type": "access",
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tok, nil
}

// Parse validates an access token and returns its claims.
func Parse(secret, raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || mc["token_type"] != "access" {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	if sub == "" || !models.StaffRole(role).Valid() {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: sub, Email: email, Role: models.StaffRole(role)}, nil
}

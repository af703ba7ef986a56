package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/models"
)

const secret = "token-test-secret"

func TestIssueParse_RoundTrip(t *testing.T) {
	in := Claims{Subject: "staff-7", Email: "front@whitebay.test", Role: models.RoleStaff}

	raw, err := Issue(secret, in, time.Hour, time.Now())
	require.NoError(t, err)

	out, err := Parse(secret, raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestIssue_EmptySecret(t *testing.T) {
	_, err := Issue("", Claims{Subject: "x", Role: models.RoleAdmin}, time.Hour, time.Now())
	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	valid, err := Issue(secret, Claims{Subject: "s", Role: models.RoleAdmin}, time.Hour, time.Now())
	require.NoError(t, err)
	expired, err := Issue(secret, Claims{Subject: "s", Role: models.RoleAdmin}, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	cases := map[string]struct {
		secret string
		raw    string
	}{
		"wrong secret":  {"other", valid},
		"expired":       {secret, expired},
		"garbage":       {secret, "not.a.token"},
		"refresh token": {secret, sign(jwt.MapClaims{"sub": "s", "role": "admin", "token_type": "refresh", "exp": exp})},
		"unknown role":  {secret, sign(jwt.MapClaims{"sub": "s", "role": "owner", "token_type": "access", "exp": exp})},
		"no subject":    {secret, sign(jwt.MapClaims{"role": "admin", "token_type": "access", "exp": exp})},
		"none alg": {secret, func() string {
			s, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "s", "role": "admin", "token_type": "access"}).
				SignedString(jwt.UnsafeAllowNoneSignatureType)
			return s
		}()},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tc.secret, tc.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

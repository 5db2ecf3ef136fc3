package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWTService {
	return &JWTService{jwtSecretKey: "super-secret-jwt-token", audience: "authenticated"}
}

func TestVerifyJWTToken(t *testing.T) {
	svc := newTestJWT()

	token, err := svc.SignToken("6f1c2d3e-user", "ana@example.com", time.Hour)
	require.NoError(t, err)

	identity, err := svc.VerifyJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6f1c2d3e-user", identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)
}

func TestVerifyJWTToken_Rejects(t *testing.T) {
	svc := newTestJWT()

	expired, err := svc.SignToken("user-1", "ana@example.com", -time.Minute)
	require.NoError(t, err)

	other := &JWTService{jwtSecretKey: "another-secret", audience: "authenticated"}
	forged, err := other.SignToken("user-1", "ana@example.com", time.Hour)
	require.NoError(t, err)

	wrongAudience := &JWTService{jwtSecretKey: svc.jwtSecretKey, audience: "anon"}
	anon, err := wrongAudience.SignToken("user-1", "", time.Hour)
	require.NoError(t, err)

	noSubject, err := svc.SignToken("", "ana@example.com", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Audience: jwt.ClaimStrings{"authenticated"}},
	}).SignedString([]byte(svc.jwtSecretKey))
	require.NoError(t, err)

	cases := map[string]string{
		"expired":        expired,
		"forged":         forged,
		"wrong audience": anon,
		"no subject":     noSubject,
		"no expiry":      noExpiry,
		"garbage":        "not-a-jwt",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyJWTToken(token)
			assert.Error(t, err)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWT()

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Bearer ", "Token abc", "bearer abc"} {
		_, err := svc.ExtractTokenFromHeader(header)
		assert.Error(t, err, header)
	}
}

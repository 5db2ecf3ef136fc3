package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kevin-Guilherme/fluentify/middleware"
	"github.com/alphabatem/common/context"
	"github.com/golang-jwt/jwt/v5"
)

// JWTService verifies access tokens issued by Supabase. Tokens are HS256
// signed with the project's JWT secret and carry the user id in "sub".
type JWTService struct {
	context.DefaultService

	jwtSecretKey string
	audience     string
}

type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	svc.jwtSecretKey = os.Getenv("SUPABASE_JWT_SECRET")
	svc.audience = getEnv("SUPABASE_JWT_AUDIENCE", "authenticated")
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	if svc.jwtSecretKey == "" {
		return errors.New("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

func (svc *JWTService) VerifyJWTToken(jwtToken string) (*middleware.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if svc.audience != "" {
		opts = append(opts, jwt.WithAudience(svc.audience))
	}

	token, err := jwt.ParseWithClaims(jwtToken, &SupabaseClaims{}, svc.getJWTKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SupabaseClaims)
	if !ok || !token.Valid {
		return nil, errors.New("unsupported JWT format")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &middleware.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return []byte(svc.jwtSecretKey), nil
}

// SignToken issues a token in the Supabase shape. The request path never
// signs tokens.
func (svc *JWTService) SignToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SupabaseClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{svc.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(svc.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return tokenString, nil
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", errors.New("invalid authorization header format")
	}

	return token, nil
}

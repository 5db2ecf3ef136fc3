package middleware

import (
	"context"

	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Identity is what a verified access token tells us about the caller.
type Identity struct {
	UserID string
	Email  string
}

type TokenVerifier interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyJWTToken(token string) (*Identity, error)
}

// UserEnsurer creates the local user row on first sight of an identity.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, userID, email string) error
}

// RequiredAuth rejects requests without a valid bearer token and stores the
// caller's id and email in the request locals. ensurer may be nil.
func RequiredAuth(verifier TokenVerifier, ensurer UserEnsurer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := verifier.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.NewUnauthorizedError(err)
		}

		identity, err := verifier.VerifyJWTToken(token)
		if err != nil {
			return shared.NewUnauthorizedError(err)
		}

		if identity.UserID == "" {
			return shared.NewUnauthorizedError(nil)
		}

		if ensurer != nil {
			if err := ensurer.EnsureUser(c.UserContext(), identity.UserID, identity.Email); err != nil {
				log.WithFields(log.Fields{
					"user_id": identity.UserID,
					"error":   err.Error(),
				}).Error("Failed to provision user")
				return err
			}
		}

		c.Locals(shared.UserID, identity.UserID)
		c.Locals(shared.UserEmail, identity.Email)
		return c.Next()
	}
}

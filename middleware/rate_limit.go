package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type Limiter interface {
	IsAllowed(ctx context.Context, identifier, endpointType string) (*model.RateLimitStatus, error)
}

// RateLimit limits a route per authenticated user, falling back to the
// client IP. Limiter failures let the request through.
func RateLimit(limiter Limiter, endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := getIdentifier(c)

		status, err := limiter.IsAllowed(c.UserContext(), identifier, endpointType)
		if err != nil {
			log.WithFields(log.Fields{
				"endpoint_type": endpointType,
				"identifier":    identifier,
				"error":         err.Error(),
			}).Warn("Rate limit check failed, allowing request")
			return c.Next()
		}

		addRateLimitHeaders(c, status)

		if !status.Allowed {
			return shared.NewRateLimitedError()
		}

		return c.Next()
	}
}

func getIdentifier(c *fiber.Ctx) string {
	if userID, ok := c.Locals(shared.UserID).(string); ok && userID != "" {
		return userID
	}
	return c.IP()
}

func addRateLimitHeaders(c *fiber.Ctx, status *model.RateLimitStatus) {
	if status == nil || status.Remaining < 0 {
		return
	}

	c.Set("X-RateLimit-Limit", strconv.Itoa(status.Limit))
	c.Set("X-RateLimit-Remaining", strconv.Itoa(status.Remaining))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(status.ResetAt.Unix(), 10))

	if !status.Allowed {
		retryAfter := int(time.Until(status.ResetAt).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
	}
}

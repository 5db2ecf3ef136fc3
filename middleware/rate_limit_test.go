package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	status      *model.RateLimitStatus
	err         error
	identifiers []string
}

func (l *fakeLimiter) IsAllowed(ctx context.Context, identifier, endpointType string) (*model.RateLimitStatus, error) {
	l.identifiers = append(l.identifiers, endpointType+":"+identifier)
	return l.status, l.err
}

func newLimitedApp(limiter Limiter, userID string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: shared.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals(shared.UserID, userID)
		}
		return c.Next()
	})
	app.Post("/reply", RateLimit(limiter, shared.EndpointReply), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})
	return app
}

func postReply(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/reply", nil))
	require.NoError(t, err)
	return resp
}

func TestRateLimit_Allowed(t *testing.T) {
	limiter := &fakeLimiter{status: &model.RateLimitStatus{
		Allowed:   true,
		Limit:     30,
		Remaining: 29,
		ResetAt:   time.Unix(1741600060, 0),
	}}

	resp := postReply(t, newLimitedApp(limiter, "user-1"))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "30", resp.Header.Get("X-RateLimit-Limit"))
	assert.Equal(t, "29", resp.Header.Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1741600060", resp.Header.Get("X-RateLimit-Reset"))
	assert.Empty(t, resp.Header.Get(fiber.HeaderRetryAfter))
	assert.Equal(t, []string{"reply:user-1"}, limiter.identifiers)
}

func TestRateLimit_Exceeded(t *testing.T) {
	limiter := &fakeLimiter{status: &model.RateLimitStatus{
		Allowed:   false,
		Limit:     30,
		Remaining: 0,
		ResetAt:   time.Now().Add(42 * time.Second),
	}}

	resp := postReply(t, newLimitedApp(limiter, "user-1"))

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestRateLimit_UnlimitedSkipsHeaders(t *testing.T) {
	limiter := &fakeLimiter{status: &model.RateLimitStatus{Allowed: true, Remaining: -1}}

	resp := postReply(t, newLimitedApp(limiter, ""))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("X-RateLimit-Limit"))
	require.Len(t, limiter.identifiers, 1)
	assert.NotEqual(t, "reply:", limiter.identifiers[0])
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis down")}

	resp := postReply(t, newLimitedApp(limiter, "user-1"))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	db := newTestDB(t)
	ds := &DatabaseService{db: db, driver: DriverSqlite}

	createTestUser(t, db, "user-1")
	dup := db.Create(&model.User{ID: "user-2", Email: "user-1@example.com"}).Error
	require.Error(t, dup)

	assert.True(t, shared.HasCode(ds.HandleError(dup), shared.CodeConflict))
	assert.Nil(t, ds.HandleError(nil))

	missing := ds.HandleError(db.First(&model.User{}, "id = ?", "nobody").Error)
	assert.Contains(t, missing.Error(), "NOT_FOUND")
	_, isAppErr := shared.GetAppError(missing)
	assert.False(t, isAppErr)
}

func TestHttpErrorHandler(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "user-1")

	svc := &HttpService{database: &DatabaseService{db: db, driver: DriverSqlite}}
	app := newApp(nil, svc.handleError)
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return db.Create(&model.User{ID: "user-2", Email: "user-1@example.com"}).Error
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/app", func(c *fiber.Ctx) error {
		return shared.NewTopicNotFoundError()
	})

	cases := map[string]int{
		"/conflict": http.StatusConflict,
		"/boom":     http.StatusInternalServerError,
		"/app":      http.StatusNotFound,
		"/missing":  http.StatusNotFound,
	}
	for path, status := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode, path)
	}
}

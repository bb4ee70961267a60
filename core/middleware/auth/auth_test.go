package auth_test

import (
	"net/http/httptest"
	"testing"

	"hvac-matcher/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuthRejectsMissingKey(t *testing.T) {
	app := testApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRejectsWrongKey(t *testing.T) {
	app := testApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.HeaderName, "wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthAcceptsValidKey(t *testing.T) {
	app := testApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.HeaderName, "secret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	app := testApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"Backend-BrainBattle/src/middleware"
	"Backend-BrainBattle/src/models"
	"Backend-BrainBattle/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware.AuthJWT, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Post("/admin-only", middleware.AuthJWT, middleware.AdminOnly, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	app := setupApp()

	t.Run("TestMissingHeaderRejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("TestWrongSchemeRejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Basic abc123")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("TestGarbageTokenRejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("TestValidTokenPassesClaimsThrough", func(t *testing.T) {
		token, err := utils.GenerateJWT("65d1f9c8e4b0a5d3c2b1a0f9", "alice@brainbattle.dev", models.RoleUser)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "65d1f9c8e4b0a5d3c2b1a0f9", body["userId"])
		assert.Equal(t, models.RoleUser, body["role"])
	})
}

func TestAdminOnly(t *testing.T) {
	app := setupApp()

	t.Run("TestUserRoleForbidden", func(t *testing.T) {
		token, _ := utils.GenerateJWT("65d1f9c8e4b0a5d3c2b1a0f9", "alice@brainbattle.dev", models.RoleUser)

		req := httptest.NewRequest("POST", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("TestAdminRoleAllowed", func(t *testing.T) {
		token, _ := utils.GenerateJWT("65d1f9c8e4b0a5d3c2b1a0f8", "admin@brainbattle.dev", models.RoleAdmin)

		req := httptest.NewRequest("POST", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

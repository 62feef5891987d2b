package server

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _, _ := setupTestServer(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user/register", fiber.Map{
		"email":           "new@example.com",
		"name":            "New User",
		"password":        "Password123",
		"confirmPassword": "Password123",
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, fiber.StatusCreated, env.Status)
	assert.Equal(t, "Successfully Registered User", env.Message)

	var data struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotZero(t, data.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, _, _ := setupTestServer(t)

	body := fiber.Map{
		"email":           "dup@example.com",
		"name":            "First",
		"password":        "Password123",
		"confirmPassword": "Password123",
	}
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/register", body, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user/register", body, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, fiber.StatusConflict, env.Status)
}

func TestRegister_WeakPassword(t *testing.T) {
	app, _, _ := setupTestServer(t)

	tests := []struct {
		name     string
		password string
	}{
		{"Too short", "Pw1"},
		{"No uppercase", "password1"},
		{"No digit", "Passwords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/register", fiber.Map{
				"email":    "weak@example.com",
				"name":     "Weak",
				"password": tt.password,
			}, "")
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	app, _, _ := setupTestServer(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/register", fiber.Map{
		"email":           "mismatch@example.com",
		"name":            "User",
		"password":        "Password123",
		"confirmPassword": "Different123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegister_InvalidEmail(t *testing.T) {
	app, _, _ := setupTestServer(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/register", fiber.Map{
		"email":           "not-an-email",
		"name":            "User",
		"password":        "Password123",
		"confirmPassword": "Password123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _, _ := setupTestServer(t)
	registerAndLogin(t, app, "login@example.com")

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user/login", fiber.Map{
		"email":    "login@example.com",
		"password": "Password123",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login Successful", env.Message)

	var data struct {
		Token string `json:"token"`
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "login@example.com", data.Email)
	assert.Equal(t, "Test Author", data.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _, _ := setupTestServer(t)
	registerAndLogin(t, app, "user@example.com")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/login", fiber.Map{
		"email":    "user@example.com",
		"password": "WrongPassword1",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	app, _, _ := setupTestServer(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/login", fiber.Map{
		"email":    "ghost@example.com",
		"password": "Password123",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_MissingAndBadTokens(t *testing.T) {
	app, _, _ := setupTestServer(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/post/create", fiber.Map{
		"title": "t", "content": "c", "full_content": "f",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/post/create", fiber.Map{
		"title": "t", "content": "c", "full_content": "f",
	}, "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

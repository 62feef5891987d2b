package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inkwell/internal/config"
	"inkwell/internal/models"
)

// envelope mirrors the uniform response body for assertions.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestServer(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	cfg := &config.Config{
		Port:      "8460",
		Env:       "test",
		JWTSecret: "test-secret-at-least-32-characters-long",
	}
	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp, env
}

// registerAndLogin creates an account and returns its bearer token and user id.
func registerAndLogin(t *testing.T, app *fiber.App, email string) (string, uint) {
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user/register", fiber.Map{
		"email":           email,
		"name":            "Test Author",
		"password":        "Password123",
		"confirmPassword": "Password123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user/login", fiber.Map{
		"email":    email,
		"password": "Password123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
		ID    uint   `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token, data.ID
}

func createPostViaAPI(t *testing.T, app *fiber.App, token, title string) uint {
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/post/create", fiber.Map{
		"title":        title,
		"content":      "Teaser for " + title,
		"full_content": "Full body of " + title,
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, "Post created Successfully", env.Message)

	var data struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotZero(t, data.ID)
	return data.ID
}

func seedPostsViaAPI(t *testing.T, app *fiber.App, token string, count int) []uint {
	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, createPostViaAPI(t, app, token, fmt.Sprintf("Post %d", i)))
	}
	return ids
}

package app

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"skill-gap/internal/config"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const usersFile = `[
	{"id": 1, "name": "Alice", "skills": "Python, SQL", "primary_focus": "Data Science", "experience_years": 1},
	{"id": 2, "name": "Bob", "skills": ["Python", "SQL", "Machine Learning"], "primary_focus": "Data Science", "experience_years": 4},
	{"id": 3, "name": "Carol", "skills": ["Go", "Docker"], "primary_focus": "Backend", "experience_years": 6}
]`

const jobsFile = `[
	{"id": 10, "title": "Data Scientist", "company": "Acme", "skills": ["Python", "SQL", "Machine Learning"], "role_type": "Data Science"},
	{"id": 11, "title": "ML Engineer", "company": "Initech", "skills": ["Python", "Machine Learning", "Docker"], "role_type": "Data Science"},
	{"id": 12, "title": "Backend Engineer", "company": "Globex", "skills": "Go, Docker, SQL", "role_type": "Backend"}
]`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		App: config.AppConfig{AppName: "skill-gap-test", HTTPPort: "0", CORSAllowOrigins: "*"},
		Data: config.DataConfig{
			UsersPath:      filepath.Join(dir, "Data", "users.json"),
			JobsPath:       filepath.Join(dir, "Data", "jobs.json"),
			MaxUploadBytes: 1 << 20,
		},
		Log: config.LogConfig{Level: "disabled"},
	}
}

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	a, cleanup, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return a
}

func do(t *testing.T, a *App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := a.Fiber.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(b) > 0 && b[0] == '{' {
		require.NoError(t, json.Unmarshal(b, &out), string(b))
	}
	return resp.StatusCode, out
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func uploadRequest(t *testing.T, path, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename == "" {
		require.NoError(t, w.WriteField(field, content))
	} else {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestAPI_FullFlow(t *testing.T) {
	a := newTestApp(t, testConfig(t))

	status, body := do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/status", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "not_initialized", body["status"])
	assert.Equal(t, "Recommender not initialized. Please upload users and jobs data.", body["message"])

	status, body = do(t, a, jsonRequest(fiber.MethodPost, "/api/recommend-skills", `{"user_id": 1}`))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Recommender not initialized. Please upload users and jobs data first.", body["error"])

	status, body = do(t, a, uploadRequest(t, "/api/upload-users", "file", "users.json", usersFile))
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Users data uploaded successfully", body["message"])

	status, body = do(t, a, uploadRequest(t, "/api/upload-jobs", "file", "jobs.json", jobsFile))
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "Jobs data uploaded successfully", body["message"])

	status, body = do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/status", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
	assert.EqualValues(t, 3, body["users_count"])
	assert.EqualValues(t, 3, body["jobs_count"])

	status, body = do(t, a, jsonRequest(fiber.MethodPost, "/api/recommend-skills", `{"user_id": 1}`))
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, "market_recommendations")
	assert.Contains(t, body, "collaborative_recommendations")
	assert.NotEmpty(t, body["analysis"])
	matches, ok := body["job_matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 3)
	first := matches[0].(map[string]any)
	assert.EqualValues(t, 10, first["id"])
	assert.Equal(t, "Data Scientist", first["title"])
	assert.Equal(t, "Acme", first["company"])
	assert.Contains(t, first, "match_score")

	status, body = do(t, a, jsonRequest(fiber.MethodPost, "/api/analyze-skill-gaps", `{"user_id": 1, "job_id": 12}`))
	require.Equal(t, fiber.StatusOK, status, body)
	gaps := body["skill_gaps"].([]any)
	require.Len(t, gaps, 2)
	assert.Contains(t, gaps[0].(map[string]any), "importance")

	status, body = do(t, a, jsonRequest(fiber.MethodPost, "/api/refresh-recommender", ``))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Recommender refreshed with latest data", body["message"])
	assert.Equal(t, true, body["has_data"])
}

func TestAPI_Listings(t *testing.T) {
	a := newTestApp(t, testConfig(t))
	_, _ = do(t, a, uploadRequest(t, "/api/upload-users", "file", "users.json", usersFile))
	_, _ = do(t, a, uploadRequest(t, "/api/upload-jobs", "file", "jobs.json", jobsFile))

	status, body := do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/jobs", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])

	status, body = do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/jobs/2", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])
	jobs := body["jobs"].([]any)
	assert.EqualValues(t, 11, jobs[1].(map[string]any)["id"])

	status, body = do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/users/0", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 0, body["count"])
	assert.Empty(t, body["users"])

	status, body = do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/users", nil))
	assert.Equal(t, fiber.StatusOK, status)
	users := body["users"].([]any)
	require.Len(t, users, 3)
	assert.Equal(t, []any{"Python", "SQL"}, users[0].(map[string]any)["skills"])

	for _, path := range []string{"/api/jobs/-1", "/api/jobs/abc", "/api/users/1.5"} {
		status, _ = do(t, a, httptest.NewRequest(fiber.MethodGet, path, nil))
		assert.Equal(t, fiber.StatusNotFound, status, path)
	}
}

func TestAPI_UploadErrors(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, cfg)

	status, body := do(t, a, uploadRequest(t, "/api/upload-users", "other", "users.json", usersFile))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No file part", body["error"])

	status, body = do(t, a, uploadRequest(t, "/api/upload-users", "file", "users.csv", usersFile))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "File must be JSON format", body["error"])

	status, body = do(t, a, uploadRequest(t, "/api/upload-jobs", "file", "jobs.json", `[{"title": "no id"}]`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "invalid data file")
	assert.NotEmpty(t, body["details"])

	status, _ = do(t, a, jsonRequest(fiber.MethodPost, "/api/upload-jobs", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAPI_RecommendRequestErrors(t *testing.T) {
	a := newTestApp(t, testConfig(t))
	_, _ = do(t, a, uploadRequest(t, "/api/upload-users", "file", "users.json", usersFile))
	_, _ = do(t, a, uploadRequest(t, "/api/upload-jobs", "file", "jobs.json", jobsFile))

	for _, b := range []string{``, `{}`, `{"user_id": null}`, `{"user_id": 0}`} {
		status, body := do(t, a, jsonRequest(fiber.MethodPost, "/api/recommend-skills", b))
		assert.Equal(t, fiber.StatusBadRequest, status, b)
		assert.Equal(t, "User ID is required", body["error"], b)
	}

	status, _ := do(t, a, jsonRequest(fiber.MethodPost, "/api/recommend-skills", `{"user_id": 42}`))
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, a, jsonRequest(fiber.MethodPost, "/api/analyze-skill-gaps", `{"user_id": 1, "job_id": 999}`))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	a := newTestApp(t, testConfig(t))

	status, body := do(t, a, httptest.NewRequest(fiber.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, _ = do(t, a, httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAPI_AdminAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Auth = config.AuthConfig{AdminPasswordHash: string(hash), JWTSecret: "jwt-secret", JWTExpiresIn: time.Hour}
	a := newTestApp(t, cfg)

	status, _ := do(t, a, uploadRequest(t, "/api/upload-users", "file", "users.json", usersFile))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = do(t, a, jsonRequest(fiber.MethodPost, "/api/auth/token", `{"password": "nope"}`))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := do(t, a, jsonRequest(fiber.MethodPost, "/api/auth/token", `{"password": "s3cret-pass"}`))
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "Bearer", body["token_type"])
	tok, _ := body["access_token"].(string)
	require.NotEmpty(t, tok)

	req := uploadRequest(t, "/api/upload-users", "file", "users.json", usersFile)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	status, _ = do(t, a, req)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/users", nil))
	assert.Equal(t, fiber.StatusOK, status, "reads stay public")
}

func TestAPI_TokenRouteWithoutAuthConfigured(t *testing.T) {
	a := newTestApp(t, testConfig(t))

	status, _ := do(t, a, jsonRequest(fiber.MethodPost, "/api/auth/token", `{"password": "x"}`))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

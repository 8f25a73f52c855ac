package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/diettrack/backend/config"
	"github.com/diettrack/backend/internal/api"
	"github.com/diettrack/backend/internal/service"
	"github.com/diettrack/backend/internal/testhelpers"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupAPITest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupInMemoryDatabase(t)

	authSvc := service.NewAuthService(db, "test-secret", "admin@diettrack.com")
	userSvc := service.NewUserService(db, service.NewEmailService())
	foodSvc := service.NewFoodService(db)
	mealSvc := service.NewMealService(db)
	assistantSvc := service.NewAssistantService(&config.Config{})

	router := gin.New()
	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authSvc).RegisterRoutes(v1)
	api.NewUserHandler(userSvc, authSvc).RegisterRoutes(v1)
	api.NewFoodHandler(foodSvc, authSvc).RegisterRoutes(v1)
	api.NewMealHandler(mealSvc, nil, authSvc).RegisterRoutes(v1)
	api.NewAssistantHandler(assistantSvc, nil, authSvc).RegisterRoutes(v1)

	return &testEnv{router: router, db: db, auth: authSvc}
}

func (e *testEnv) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) registerUser(t *testing.T, name, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name": %q, "email": %q, "password": "password123"}`, name, email)
	w := e.request(t, "POST", "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

func TestRegisterEndpoint(t *testing.T) {
	env := setupAPITest(t)

	w := env.request(t, "POST", "/api/v1/auth/register", "",
		`{"name": "Test User", "email": "reg@example.com", "password": "password123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email   string `json:"email"`
			IsAdmin bool   `json:"is_admin"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "reg@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)

	// Duplicate registration
	w = env.request(t, "POST", "/api/v1/auth/register", "",
		`{"name": "Test User", "email": "reg@example.com", "password": "password123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", decodeError(t, w))
}

func TestRegisterValidation(t *testing.T) {
	env := setupAPITest(t)

	// Short password
	w := env.request(t, "POST", "/api/v1/auth/register", "",
		`{"name": "User", "email": "short@example.com", "password": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = env.request(t, "POST", "/api/v1/auth/register", "",
		`{"name": "User", "email": "not-an-email", "password": "password123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupAPITest(t)
	env.registerUser(t, "Login User", "login@example.com")

	w := env.request(t, "POST", "/api/v1/auth/login", "",
		`{"email": "login@example.com", "password": "password123"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, "POST", "/api/v1/auth/login", "",
		`{"email": "login@example.com", "password": "wrongpassword"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decodeError(t, w))
}

func TestAuthRequired(t *testing.T) {
	env := setupAPITest(t)

	for _, path := range []string{
		"/api/v1/users/me",
		"/api/v1/foods",
		"/api/v1/meals",
	} {
		w := env.request(t, "GET", path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := env.request(t, "GET", "/api/v1/users/me", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAssistantEmptyPrompt(t *testing.T) {
	env := setupAPITest(t)
	token := env.registerUser(t, "Chat User", "chat@example.com")

	w := env.request(t, "POST", "/api/v1/assistant", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Provide either a prompt string or a messages array.", decodeError(t, w))
}

func TestAssistantUnconfigured(t *testing.T) {
	env := setupAPITest(t)
	token := env.registerUser(t, "Chat User", "chat2@example.com")

	w := env.request(t, "POST", "/api/v1/assistant", token, `{"prompt": "What should I eat?"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Chat assistant is currently unavailable.", decodeError(t, w))
}

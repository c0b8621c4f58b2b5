package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/mindhaven/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(testutil.OpenDB(t))
	NewHandler(svc).RegisterRoutes(r.Group(""), middleware.Auth(), middleware.RateLimit(nil))
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("DuplicateRegistrationIs400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/register",
			`{"username":"alice2","email":"alice@example.com","password":"hunter23"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already exists", gjson.Get(w.Body.String(), "msg").String())
	})

	t.Run("ShortPasswordAndBareEmailAccepted", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/register",
			`{"username":"bob","email":"bob@local","password":"ab"}`, "")
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("LoginIssuesUsableToken", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login",
			`{"email":"alice@example.com","password":"hunter22"}`, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		token := gjson.Get(w.Body.String(), "access_token").String()
		require.NotEmpty(t, token)

		w = doJSON(r, http.MethodGet, "/protected", "", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice@example.com", gjson.Get(w.Body.String(), "logged_in_as").String())
	})

	t.Run("LoginWrongPasswordIs401", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login",
			`{"email":"alice@example.com","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", gjson.Get(w.Body.String(), "msg").String())
	})

	t.Run("ProtectedWithoutTokenIs401", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/protected", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ProtectedWithExpiredTokenIs401", func(t *testing.T) {
		expired, err := jwt.Sign("alice@example.com", -time.Minute)
		require.NoError(t, err)
		w := doJSON(r, http.MethodGet, "/protected", "", expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

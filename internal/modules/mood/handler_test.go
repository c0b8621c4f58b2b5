package mood

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/modules/auth"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/mindhaven/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(t)

	u := models.UserModel{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	r := gin.New()
	NewHandler(NewService(db), auth.NewService(db)).RegisterRoutes(r.Group("/api"), middleware.Auth())

	token, err := jwt.Sign(u.Email, jwt.TokenTTL)
	require.NoError(t, err)
	return r, token
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

func TestMoodEndpoints(t *testing.T) {
	r, token := newTestRouter(t)

	t.Run("RequiresToken", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/moods", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MissingMoodIs400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/mood", `{"note": "no mood field"}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Mood is required", gjson.Get(w.Body.String(), "error").String())
	})

	t.Run("WhitespaceMoodIs400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/mood", `{"mood": "   "}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Mood is required", gjson.Get(w.Body.String(), "error").String())
	})

	w := doJSON(r, http.MethodPost, "/api/mood", `{"mood": "calm", "note": "slept well"}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("ListShowsEntry", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/moods", "", token)
		require.Equal(t, http.StatusOK, w.Code)
		require.EqualValues(t, 1, gjson.Get(w.Body.String(), "#").Int())
		assert.Equal(t, "calm", gjson.Get(w.Body.String(), "0.mood").String())
	})

	t.Run("UpdateBadIDIs404", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/mood/not-a-number", `{"mood": "tense"}`, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Mood entry not found or access denied", gjson.Get(w.Body.String(), "error").String())
	})

	t.Run("DeleteUnknownIs404", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/mood/424242", "", token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

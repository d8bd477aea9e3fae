package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deaduchiha/api-nikode/internal/auth"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

const (
	userKey      = "demo-api-key-123"
	moderatorKey = "test-api-key-456"
	adminKey     = "admin-api-key-789"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := auth.NewStaticResolver(map[string]string{
		userKey:      "user",
		moderatorKey: "moderator",
		adminKey:     "admin",
	})
	h := NewHandler(NewService(NewRepository()))

	r := gin.New()
	g := r.Group("/api/users")
	g.GET("", auth.Required(resolver), auth.MinimumRole(auth.RoleModerator, "Insufficient permissions to list users"), h.List)
	g.GET("/:id", auth.Required(resolver), h.GetByID)
	g.POST("", auth.Required(resolver), auth.MinimumRole(auth.RoleAdmin, "Insufficient permissions to create users"), h.Create)
	g.PUT("/:id", auth.Required(resolver), auth.ExactRole(auth.RoleAdmin, "Insufficient permissions to update users"), h.Update)
	g.DELETE("/:id", auth.Required(resolver), auth.MinimumRole(auth.RoleAdmin, "Insufficient permissions to delete users"), h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, apiKey string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(auth.HeaderAPIKey, apiKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listEnvelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       []User               `json:"data"`
	Pagination *response.Pagination `json:"pagination"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listEnvelope {
	t.Helper()
	var env listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestListRequiresModerator(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/users", userKey, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions to list users")

	w = doRequest(r, http.MethodGet, "/api/users?limit=100", moderatorKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeList(t, w)
	assert.Len(t, env.Data, 10)
	assert.Equal(t, 10, env.Pagination.Total)
	// 默认按username升序
	assert.Equal(t, "admin", env.Data[0].Username)
}

func TestListFilters(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/users?role=admin&limit=100", adminKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeList(t, w)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "admin", env.Data[0].Username)

	w = doRequest(r, http.MethodGet, "/api/users?active=false&limit=100", adminKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeList(t, w)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "saitama_sensei", env.Data[0].Username)

	// "0"和"false"等价
	w = doRequest(r, http.MethodGet, "/api/users?active=0&limit=100", adminKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeList(t, w)
	assert.Len(t, env.Data, 1)

	w = doRequest(r, http.MethodGet, "/api/users?q=naruto&limit=100", adminKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeList(t, w)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "naruto_uzumaki", env.Data[0].Username)
}

func TestGetByIDAnyAuthenticatedRole(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/users/3", userKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anime_lover")

	w = doRequest(r, http.MethodGet, "/api/users/999", userKey, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestCreateRequiresAdmin(t *testing.T) {
	r := newTestRouter()

	body := CreateRequest{Username: "new_user", Email: "new@example.com"}

	w := doRequest(r, http.MethodPost, "/api/users", moderatorKey, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions to create users")

	w = doRequest(r, http.MethodPost, "/api/users", adminKey, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Data User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Data.ID)
	// 缺省值：role=user, isActive=true
	assert.Equal(t, "user", env.Data.Role)
	assert.True(t, env.Data.IsActive)
}

func TestCreateConflictMessages(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/api/users", adminKey, CreateRequest{Username: "fresh_name", Email: "ADMIN@nikode-api.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User with this email already exists")

	w = doRequest(r, http.MethodPost, "/api/users", adminKey, CreateRequest{Username: "Goku_Fan", Email: "fresh@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User with this username already exists")
}

func TestCreateInvalidBody(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/api/users", adminKey, CreateRequest{Username: "ab", Email: "new@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user data")

	w = doRequest(r, http.MethodPost, "/api/users", adminKey, CreateRequest{Username: "valid_name", Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateExactAdminOnly(t *testing.T) {
	r := newTestRouter()

	body := map[string]interface{}{"username": "renamed_user"}

	// moderator等级不够，且检查是严格相等而非等级比较
	w := doRequest(r, http.MethodPut, "/api/users/3", moderatorKey, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions to update users")

	w = doRequest(r, http.MethodPut, "/api/users/3", adminKey, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "renamed_user")
}

func TestUpdateMissingUser(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPut, "/api/users/999", adminKey, map[string]interface{}{"username": "whatever_name"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodDelete, "/api/users/3", moderatorKey, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/users/3", adminKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User deleted successfully")

	w = doRequest(r, http.MethodDelete, "/api/users/3", adminKey, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAdminUserAlwaysForbidden(t *testing.T) {
	r := newTestRouter()

	// 即使调用方是admin，admin用户也不可删除
	w := doRequest(r, http.MethodDelete, "/api/users/1", adminKey, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot delete admin users")
}

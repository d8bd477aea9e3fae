package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() Resolver {
	return NewStaticResolver(map[string]string{
		"user-key":      "user",
		"moderator-key": "moderator",
		"admin-key":     "admin",
	})
}

// whoami 回显中间件解析出的角色，便于测试断言。
func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"role": string(CurrentRole(c))})
}

func roleOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["role"]
}

func TestSatisfiesHierarchy(t *testing.T) {
	assert.True(t, RoleAdmin.Satisfies(RoleUser))
	assert.True(t, RoleAdmin.Satisfies(RoleAdmin))
	assert.True(t, RoleModerator.Satisfies(RoleUser))
	assert.False(t, RoleModerator.Satisfies(RoleAdmin))
	assert.False(t, RoleUser.Satisfies(RoleModerator))
	assert.False(t, RoleGuest.Satisfies(RoleUser))
}

func TestStaticResolverSkipsInvalidRoles(t *testing.T) {
	resolver := NewStaticResolver(map[string]string{
		"good-key":   "admin",
		"broken-key": "superadmin",
	})

	role, ok := resolver.Resolve("good-key")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = resolver.Resolve("broken-key")
	assert.False(t, ok)

	_, ok = resolver.Resolve("unknown-key")
	assert.False(t, ok)
}

func TestOptionalWithoutKeyYieldsGuest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Optional(testResolver()), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guest", roleOf(t, w))
}

func TestOptionalWithInvalidKeyRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Optional(testResolver()), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestRequiredWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Required(testResolver()), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestRequiredAcceptsBearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Required(testResolver()), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer moderator-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "moderator", roleOf(t, w))
}

func TestAPIKeyHeaderWinsOverAuthorization(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Required(testResolver()), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "admin-key")
	req.Header.Set("Authorization", "Bearer user-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", roleOf(t, w))
}

func TestMinimumRoleGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Required(testResolver()), MinimumRole(RoleModerator, "Insufficient permissions"), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "user-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "admin-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExactRoleRejectsHigherRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Required(testResolver()), ExactRole(RoleModerator, "Insufficient permissions"), whoami)

	// admin等级更高，但严格相等检查仍然拒绝
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "admin-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "moderator-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

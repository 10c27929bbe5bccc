package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func init() { gin.SetMode(gin.TestMode) }

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"username": actor.Username, "role": actor.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	issuer := security.NewTokenIssuer(testSecret, time.Hour)
	token, err := issuer.Issue(7, "alice", model.RoleEmployee)
	require.NoError(t, err)

	w := request(protectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestJWTAuth_Rejections(t *testing.T) {
	r := protectedRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer this.is.garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	issuer := security.NewTokenIssuer(testSecret, -time.Minute)
	token, err := issuer.Issue(7, "alice", model.RoleEmployee)
	require.NoError(t, err)

	w := request(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalid or expired")
}

func TestRequireRole(t *testing.T) {
	issuer := security.NewTokenIssuer(testSecret, time.Hour)
	r := protectedRouter(RequireRole(model.RoleAdmin))

	adminToken, err := issuer.Issue(1, "admin", model.RoleAdmin)
	require.NoError(t, err)
	w := request(r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	empToken, err := issuer.Issue(2, "alice", model.RoleEmployee)
	require.NoError(t, err)
	w = request(r, "Bearer "+empToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}

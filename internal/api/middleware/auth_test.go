package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requireRolesRouter(roles ...user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			// stands in for JWTAuthMiddleware: claims come from the header
			if v := c.GetHeader("X-Test-Role"); v != "" {
				roleID := int(v[0] - '0')
				c.Set("claims", &types.Claims{UserID: 1, RoleID: roleID})
			}
			c.Next()
		},
		RequireRoles(roles...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	r := requireRolesRouter(user.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Test-Role", "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	r := requireRolesRouter(user.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Test-Role", "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_RejectsAnonymous(t *testing.T) {
	r := requireRolesRouter(user.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRoleRouter(allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			// Stand-in for JWTAuth: lift the role from a test header into
			// the request context.
			role := c.GetHeader("X-Test-Role")
			c.Request = c.Request.WithContext(
				SetUserContext(c.Request.Context(), "user-1", "User One", role),
			)
		},
		RequireRole(allowed...),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	return router
}

func requestWithRole(t *testing.T, router *gin.Engine, role string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	router := newRoleRouter("approver")
	require.Equal(t, http.StatusNoContent, requestWithRole(t, router, "approver").Code)
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	router := newRoleRouter("approver")
	require.Equal(t, http.StatusForbidden, requestWithRole(t, router, "staff").Code)
	require.Equal(t, http.StatusForbidden, requestWithRole(t, router, "finance").Code)
}

func TestRequireRole_AdminAlwaysPasses(t *testing.T) {
	router := newRoleRouter("finance")
	require.Equal(t, http.StatusNoContent, requestWithRole(t, router, "admin").Code)
}

func TestRequireRole_MissingRoleForbidden(t *testing.T) {
	router := newRoleRouter("staff")
	require.Equal(t, http.StatusForbidden, requestWithRole(t, router, "").Code)
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	router := newRoleRouter("staff", "finance")
	require.Equal(t, http.StatusNoContent, requestWithRole(t, router, "staff").Code)
	require.Equal(t, http.StatusNoContent, requestWithRole(t, router, "finance").Code)
	require.Equal(t, http.StatusForbidden, requestWithRole(t, router, "approver").Code)
}

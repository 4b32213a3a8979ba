package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testJWTCfg = JWTConfig{
	SigningKey: []byte("test-signing-key"),
	Issuer:     "procureflow-test",
	ExpiresIn:  time.Hour,
}

func newAuthRouter(signingKey []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", JWTAuth(signingKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c.Request.Context()),
			"name":    GetUserName(c.Request.Context()),
			"role":    GetUserRole(c.Request.Context()),
		})
	})
	return router
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateToken(testJWTCfg, "user-1", "User One", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, expiresAt.After(time.Now()))

	router := newAuthRouter(testJWTCfg.SigningKey)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":"user-1"`)
	require.Contains(t, rec.Body.String(), `"role":"staff"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newAuthRouter(testJWTCfg.SigningKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := newAuthRouter(testJWTCfg.SigningKey)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSigningKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTCfg, "user-1", "User One", "staff")
	require.NoError(t, err)

	router := newAuthRouter([]byte("a-different-key"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredCfg := testJWTCfg
	expiredCfg.ExpiresIn = -time.Minute

	token, _, err := GenerateToken(expiredCfg, "user-1", "User One", "staff")
	require.NoError(t, err)

	router := newAuthRouter(testJWTCfg.SigningKey)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "token expired")
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return router
}

func performBoom(router *gin.Engine) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return rec
}

func TestErrorHandler_AppErrorStatusAndBody(t *testing.T) {
	rec := performBoom(newErrorRouter(apperrors.EditLocked("rejected requests are frozen")))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), apperrors.CodeEditLocked)
	require.Contains(t, rec.Body.String(), "rejected requests are frozen")
}

func TestErrorHandler_ParamsIncluded(t *testing.T) {
	rec := performBoom(newErrorRouter(apperrors.LevelOverflow(3)))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), `"required_levels":3`)
}

func TestErrorHandler_BusySetsRetryAfter(t *testing.T) {
	rec := performBoom(newErrorRouter(apperrors.Busy("req-1")))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
	require.Contains(t, rec.Body.String(), apperrors.CodeBusy)
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	rec := performBoom(newErrorRouter(errors.New("database exploded")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Internal details never leak to the client.
	require.NotContains(t, rec.Body.String(), "database exploded")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

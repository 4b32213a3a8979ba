package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	err := New(CodeValidationFailed, "title is required", http.StatusBadRequest)
	require.Equal(t, "VALIDATION_FAILED: title is required", err.Error())

	wrapped := Wrap(errors.New("pq: boom"), CodeRequestNotFound, "lookup failed", http.StatusNotFound)
	require.Contains(t, wrapped.Error(), "pq: boom")
}

func TestAppError_UnwrapSupportsSentinels(t *testing.T) {
	err := EditLocked("rejected requests are frozen")
	require.ErrorIs(t, err, ErrEditLocked)

	// Sentinels survive another layer of wrapping.
	outer := fmt.Errorf("update request: %w", err)
	require.ErrorIs(t, outer, ErrEditLocked)

	appErr, ok := IsAppError(outer)
	require.True(t, ok)
	require.Equal(t, CodeEditLocked, appErr.Code)
	require.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}

func TestConstructors_CodesAndStatuses(t *testing.T) {
	cases := []struct {
		err      *AppError
		code     string
		status   int
		sentinel error
	}{
		{EditLocked("x"), CodeEditLocked, http.StatusConflict, ErrEditLocked},
		{LevelOverflow(2), CodeLevelOverflow, http.StatusConflict, ErrLevelOverflow},
		{DuplicateLevel(1), CodeDuplicateLevel, http.StatusConflict, ErrDuplicateLevel},
		{Busy("req-1"), CodeBusy, http.StatusServiceUnavailable, ErrBusy},
		{RequestNotFound("req-1"), CodeRequestNotFound, http.StatusNotFound, ErrNotFound},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, tc.err.Code)
		require.Equal(t, tc.status, tc.err.HTTPStatus)
		require.ErrorIs(t, tc.err, tc.sentinel)
	}
}

func TestConstructors_Params(t *testing.T) {
	require.Equal(t, 3, LevelOverflow(3).Params["required_levels"])
	require.Equal(t, 2, DuplicateLevel(2).Params["level"])
	require.Equal(t, "req-9", Busy("req-9").Params["request_id"])
	require.Equal(t, "req-9", RequestNotFound("req-9").Params["request_id"])
}

func TestWithParams_NilAndEmptySafe(t *testing.T) {
	var nilErr *AppError
	require.Nil(t, nilErr.WithParams(map[string]interface{}{"a": 1}))

	err := BadRequest(CodeValidationFailed, "bad")
	require.Same(t, err, err.WithParams(nil))
	require.Nil(t, err.Params)
}

func TestIsAppError(t *testing.T) {
	_, ok := IsAppError(errors.New("plain"))
	require.False(t, ok)

	appErr, ok := IsAppError(Forbidden(CodeValidationFailed, "nope"))
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
}

package usecase

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

func TestStepInsertFailure_UniqueViolation(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("exec insert: %w", &pgconn.PgError{
		Code:           pgCodeUniqueViolation,
		ConstraintName: "approvalstep_request_id_level",
	})

	err := stepInsertFailure(cause, 2)
	require.ErrorIs(t, err, apperrors.ErrDuplicateLevel)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeDuplicateLevel, appErr.Code)
	require.Equal(t, 409, appErr.HTTPStatus)
	require.Equal(t, 2, appErr.Params["level"])
}

func TestStepInsertFailure_OtherErrorsPassThrough(t *testing.T) {
	t.Parallel()

	// A foreign-key violation is not ours to translate.
	cause := &pgconn.PgError{Code: "23503"}

	err := stepInsertFailure(cause, 1)
	require.NotErrorIs(t, err, apperrors.ErrDuplicateLevel)
	require.ErrorContains(t, err, "insert approval step")

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
}

func TestLockFailure_Mapping(t *testing.T) {
	t.Parallel()

	err := lockFailure(pgx.ErrNoRows, "req-1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeRequestNotFound, appErr.Code)
	require.Equal(t, "req-1", appErr.Params["request_id"])

	err = lockFailure(fmt.Errorf("query row: %w", &pgconn.PgError{Code: pgCodeLockNotAvailable}), "req-2")
	require.ErrorIs(t, err, apperrors.ErrBusy)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBusy, appErr.Code)
	require.Equal(t, 503, appErr.HTTPStatus)

	err = lockFailure(fmt.Errorf("connection reset"), "req-3")
	_, ok = apperrors.IsAppError(err)
	require.False(t, ok)
	require.ErrorContains(t, err, "lock purchase request req-3")
}

// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers defined in pkg/errors/errors.go.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.ErrCodeInternal, "unexpected failure"},
		{"geo no match", errors.ErrCodeGeoNoMatch, "no coordinates for \"Atlantis\""},
		{"validation", errors.ErrCodeValidation, "date_range must be one of 24h|7d|30d"},
		{"enrichment timeout", errors.ErrCodeEnrichmentTimeout, "structured news source timed out"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail, "Detail should be empty for bare New()")
			assert.Nil(t, ae.Cause, "Cause should be nil for bare New()")
		})
	}
}

func TestError_FormatIncludesCodeAndDetail(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeMapQueryFailed, "query failed").WithDetail("window=30d")
	s := ae.Error()
	assert.Contains(t, s, "MAP_001")
	assert.Contains(t, s, "query failed")
	assert.Contains(t, s, "window=30d")

	bare := errors.New(errors.ErrCodeMapQueryFailed, "query failed")
	assert.False(t, strings.HasSuffix(bare.Error(), ": "), "no trailing detail separator without detail")
}

func TestWrap_NilErrorReturnsNil(t *testing.T) {
	t.Parallel()

	var err error
	assert.Nil(t, errors.Wrap(err, errors.ErrCodeDatabaseError, "should be nil"))
}

func TestWrap_PreservesCauseChain(t *testing.T) {
	t.Parallel()

	root := stderrors.New("connection refused")
	wrapped := errors.Wrap(root, errors.ErrCodeDatabaseError, "event query failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.ErrCodeDatabaseError, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, root), "errors.Is should traverse to the root cause")
}

func TestWrap_UnknownCodeInheritsOriginal(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeGeoNoMatch, "miss")
	outer := errors.Wrap(fmt.Errorf("context: %w", inner), errors.ErrCodeUnknown, "resolving failed")

	require.NotNil(t, outer)
	assert.Equal(t, errors.ErrCodeGeoNoMatch, outer.Code)
}

func TestIsCode_MatchesAnywhereInChain(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeEnrichmentTimeout, "timed out")
	outer := errors.Wrap(inner, errors.ErrCodeExternalService, "collaborator A failed")

	assert.True(t, errors.IsCode(outer, errors.ErrCodeEnrichmentTimeout))
	assert.True(t, errors.IsCode(outer, errors.ErrCodeExternalService))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeDatabaseError))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.IsNotFound(errors.NotFound("nope")))
	assert.True(t, errors.IsNotFound(errors.New(errors.ErrCodeWatchlistNotFound, "no watchlist")))
	assert.False(t, errors.IsNotFound(errors.Internal("boom")))
	assert.False(t, errors.IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.ErrCodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.ErrCodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrCodeTimeout, errors.GetCode(errors.Timeout("slow")))
}

func TestWithDetailAndCause_DoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := errors.New(errors.ErrCodeInternal, "base")
	detailed := base.WithDetail("extra")
	caused := base.WithCause(stderrors.New("root"))

	assert.Empty(t, base.Detail)
	assert.Nil(t, base.Cause)
	assert.Equal(t, "extra", detailed.Detail)
	assert.NotNil(t, caused.Cause)
}

func TestWithDetail_NilReceiver(t *testing.T) {
	t.Parallel()

	var ae *errors.AppError
	assert.Nil(t, ae.WithDetail("x"))
	assert.Nil(t, ae.WithCause(stderrors.New("y")))
}

//Personal.AI order the ending

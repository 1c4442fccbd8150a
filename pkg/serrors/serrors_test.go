package serrors_test

import (
	"errors"
	"fmt"
	"popdash/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type statusError struct{ code int }

func (e statusError) Error() string { return fmt.Sprintf("status %d", e.code) }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrFetch,
		serrors.ErrParse,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrParse, "table %q not found", "example2")
	require.Equal(t, `table "example2" not found`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrFetch, base, "fetching page")
	require.Equal(t, "fetching page: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrUnavailable)
	require.Equal(t, "UNAVAILABLE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := statusError{code: 503}
	e := serrors.Wrap(serrors.ErrFetch, base, "fetching page")

	require.ErrorIs(t, e, serrors.ErrFetch)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrParse)

	// kinds survive further wrapping with fmt.Errorf
	wrapped := fmt.Errorf("could not build snapshot: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrFetch)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &statusError{code: 404}
	e := serrors.Wrap(serrors.ErrFetch, base, "fetching page")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrFetch, k)

	var se *statusError
	require.ErrorAs(t, e, &se)
	require.Equal(t, 404, se.code)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrParse, serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrParse, "x"))))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

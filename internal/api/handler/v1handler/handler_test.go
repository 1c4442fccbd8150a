package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"popdash/internal/api/handler/v1handler"
	"testing"

	"popdash/pkg/logger"
	"popdash/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    serrors.Kind
		message string
	}{
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    serrors.ErrInternal,
			message: "internal error",
		},
		{
			name:    "kind sentinel",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    serrors.ErrNotFound,
			message: "resource not found",
		},
		{
			name:    "semantic with message",
			err:     serrors.With(serrors.ErrBadRequest, "unknown theme %q", "sepia"),
			status:  http.StatusBadRequest,
			code:    serrors.ErrBadRequest,
			message: `unknown theme "sepia"`,
		},
		{
			name:    "wrapped in fmt error",
			err:     fmt.Errorf("could not get snapshot: %w", serrors.With(serrors.ErrNotFound, "snapshot not found")),
			status:  http.StatusNotFound,
			code:    serrors.ErrNotFound,
			message: "snapshot not found",
		},
		{
			name:    "wrap keeps message not cause",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "invalid token"),
			status:  http.StatusUnauthorized,
			code:    serrors.ErrUnauthorized,
			message: "invalid token",
		},
		{
			name:    "rate limited fetch",
			err:     serrors.Wrap(serrors.ErrFetch, serrors.KindOnly(serrors.ErrRateLimited), "rate limited"),
			status:  http.StatusTooManyRequests,
			code:    serrors.ErrRateLimited,
			message: "rate limited",
		},
		{
			name:    "parse",
			err:     serrors.KindOnly(serrors.ErrParse),
			status:  http.StatusBadGateway,
			code:    serrors.ErrParse,
			message: "upstream document could not be parsed",
		},
		{
			name:    "unavailable",
			err:     serrors.With(serrors.ErrUnavailable, "snapshot archive is disabled"),
			status:  http.StatusServiceUnavailable,
			code:    serrors.ErrUnavailable,
			message: "snapshot archive is disabled",
		},
		{
			name: "missing security",
			err: &ogenerrors.SecurityError{
				OperationContext: ogenerrors.OperationContext{Name: "EnqueueArchive", ID: "enqueueArchive"},
				Err:              ogenerrors.ErrSecurityRequirementIsNotSatisfied,
			},
			status:  http.StatusUnauthorized,
			code:    serrors.ErrUnauthorized,
			message: "missing bearer token",
		},
		{
			name: "rejected token",
			err: &ogenerrors.SecurityError{
				Security: "BearerAuth",
				Err:      serrors.With(serrors.ErrUnauthorized, "token has no subject"),
			},
			status:  http.StatusUnauthorized,
			code:    serrors.ErrUnauthorized,
			message: "token has no subject",
		},
		{
			name: "security handler failure",
			err: &ogenerrors.SecurityError{
				Security: "BearerAuth",
				Err:      errors.New("boom"),
			},
			status:  http.StatusUnauthorized,
			code:    serrors.ErrUnauthorized,
			message: "invalid bearer token",
		},
		{
			name: "parameter decoding",
			err: &ogenerrors.DecodeParamsError{
				OperationContext: ogenerrors.OperationContext{Name: "GetView", ID: "getView"},
				Err: &ogenerrors.DecodeParamError{
					Name: "name",
					In:   "path",
					Err:  errors.New("invalid value: sepia"),
				},
			},
			status:  http.StatusBadRequest,
			code:    serrors.ErrBadRequest,
			message: `invalid path parameter "name"`,
		},
		{
			name:    "internal kind",
			err:     serrors.KindOnly(serrors.ErrInternal),
			status:  http.StatusInternalServerError,
			code:    serrors.ErrInternal,
			message: "internal error",
		},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tc.err)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.code.Error(), res.Response.Code)
			require.Equal(t, tc.message, res.Response.Message)
		})
	}
}

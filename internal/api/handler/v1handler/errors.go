package v1handler

import (
	"context"
	"errors"
	"net/http"
	"popdash/internal/api/specs/v1specs"
	"popdash/pkg/logger"
	"popdash/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

type kindStatus struct {
	kind    serrors.Kind
	status  int
	message string
}

// checked in order; ErrRateLimited comes before ErrFetch since rate limited
// fetches carry both kinds.
var kindStatuses = []kindStatus{ //nolint: gochecknoglobals
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "upstream rate limited"},
	{serrors.ErrFetch, http.StatusBadGateway, "upstream fetch failed"},
	{serrors.ErrParse, http.StatusBadGateway, "upstream document could not be parsed"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// fromOgen gives the errors raised by the generated server a kind.
func fromOgen(err error) error {
	var secErr *ogenerrors.SecurityError
	if errors.As(err, &secErr) {
		if errors.Is(secErr.Err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return serrors.With(serrors.ErrUnauthorized, "missing bearer token")
		}
		if !errors.Is(secErr.Err, serrors.ErrUnauthorized) {
			return serrors.Wrap(serrors.ErrUnauthorized, secErr.Err, "invalid bearer token")
		}

		return secErr.Err
	}

	var paramErr *ogenerrors.DecodeParamError
	if errors.As(err, &paramErr) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter %q", paramErr.In, paramErr.Name)
	}

	return err
}

// NewError maps err to a response. Semantic errors keep their message;
// anything else becomes a 500 with a generic message and is logged.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	err = fromOgen(err)
	for _, ks := range kindStatuses {
		if !errors.Is(err, ks.kind) {
			continue
		}

		message := ks.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}
		if ks.status >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.Error(err))
		}

		return &v1specs.ErrorStatusCode{
			StatusCode: ks.status,
			Response:   v1specs.Error{Code: ks.kind.Error(), Message: message},
		}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &v1specs.ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   v1specs.Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

// ErrorHandler writes the errors the generated server handles itself, such
// as malformed parameters, in the same shape as NewError.
func (h *Handler) ErrorHandler(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	writeErrorResponse(w, h.NewError(ctx, err))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorResponse(w, h.NewError(r.Context(), err))
}

func writeErrorResponse(w http.ResponseWriter, res *v1specs.ErrorStatusCode) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}

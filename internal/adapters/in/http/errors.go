package http

import (
	"errors"
	"net/http"

	"orderdelivery/internal/generated/servers"
	"orderdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Messages of internal failures are not
// exposed to the caller; they are logged instead.
func (s *Server) fail(ctx echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := statusFor(kind)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"kind", kind.String(),
			"error", err,
		)
		message = "internal error"
	}

	kindName := kind.String()
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Kind:    &kindName,
		Message: message,
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	kindName := errs.KindValidation.String()
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Kind:    &kindName,
		Message: message,
	})
}

// HTTPErrorHandler renders errors returned by middleware and the generated
// wrappers (bad path parameters, failed request validation) in the API's
// error shape.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	payload := servers.Error{
		Code:    int32(status),
		Message: message,
	}
	if status == http.StatusBadRequest {
		kindName := errs.KindValidation.String()
		payload.Kind = &kindName
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, payload)
}

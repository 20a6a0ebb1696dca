package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is sent with 503 answers to transient store failures.
const retryAfterSeconds = "1"

// statusOf maps an application error to the HTTP status it is reported with.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)

	message := err.Error()
	switch code {
	case http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		message = http.StatusText(code)
	case http.StatusServiceUnavailable:
		s.logger.WarnContext(c.Request().Context(), "Store unavailable", "path", c.Path(), "error", err)
		c.Response().Header().Set("Retry-After", retryAfterSeconds)
	}

	return c.JSON(code, servers.Error{Code: int32(code), Message: message})
}

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes or malformed parameters, in the same body as handler errors.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: int32(code), Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/contact-management/internal/apperr"
)

// errorsResp is the error envelope: {"errors": <message-or-field-map>}.
type errorsResp struct {
	Errors any `json:"errors"`
}

// NewErrorHandler returns the single boundary translator for the whole API.
// apperr errors keep their status and message (validation errors expose the
// field map instead), Echo's own routing errors pass through with their
// status, and anything else becomes a logged 500 with a generic message so
// internals never leak to clients.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var body any = "Internal server error"

		var ae *apperr.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status = ae.Status
			if ae.Fields != nil {
				body = ae.Fields
			} else {
				body = ae.Message
			}
		case errors.As(err, &he):
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				body = msg
			}
		default:
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, errorsResp{Errors: body})
	}
}

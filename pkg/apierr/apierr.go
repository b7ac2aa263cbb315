// Package apierr renders the API's error bodies. Every error response is a
// JSON object with a message; validation failures add the failing field.
package apierr

import (
	"errors"
	"log"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/pkg/schema"
)

type Message struct {
	Message string `json:"message"`
}

// Validation writes a 400 with the first failing field.
func Validation(c echo.Context, fe *schema.FieldError) error {
	log.Printf("[VALIDATION ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, fe)
	return c.JSON(http.StatusBadRequest, fe)
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, Message{Message: msg})
}

// ErrorHandler is installed as echo's HTTPErrorHandler. Errors returned by
// handlers that are not *echo.HTTPError become a plain 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[INTERNAL ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, Message{Message: msg})
	}
	if werr != nil {
		log.Printf("[INTERNAL ERROR] write error response: %v", werr)
	}
}

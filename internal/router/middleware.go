package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperr "vidchat/internal/errors"
)

// ErrorHandler renders every error in the failure envelope. Server side
// failures are logged with their full chain; clients only see the mapped message.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var resp *apperr.HTTPError
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			msg := http.StatusText(echoErr.Code)
			if s, ok := echoErr.Message.(string); ok && s != "" {
				msg = s
			}
			resp = apperr.NewHTTPError(echoErr.Code, msg, statusCode(echoErr.Code))
		} else {
			resp = apperr.MapErrorToHTTP(err)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.StatusCode)
		} else {
			err = c.JSON(resp.StatusCode, resp.ToErrorResponse())
		}
		if err != nil {
			log.Error("write error response", slog.String("error", err.Error()))
		}
	}
}

// statusCode turns an HTTP status into an error code, e.g. 404 -> NOT_FOUND.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// RequestLogger logs one line per request through slog.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			log.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

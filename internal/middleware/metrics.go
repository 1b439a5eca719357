package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
	TrackInFlight() func()
}

// Metrics records one HTTPMetric per request, labelled with the route
// template rather than the raw path.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			done := recorder.TrackInFlight()
			defer done()

			err := next(c)

			path := cmp.Or(c.Path(), "/")
			statusCode := c.Response().Status

			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				} else if !c.Response().Committed {
					statusCode = http.StatusInternalServerError
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Method:     c.Request().Method,
				Path:       path,
				StatusCode: statusCode,
				Duration:   time.Since(start),
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}

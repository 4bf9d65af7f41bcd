package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedApp() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/reports/:name", func(c *fiber.Ctx) error {
		if c.Params("name") == "broken" {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app, logs
}

func TestRequestLoggerRecordsRoutePattern(t *testing.T) {
	app, logs := newObservedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/metrics?from=x", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.Equal(t, "/reports/:name", fields["route"])
	require.Equal(t, "/reports/metrics?from=x", fields["path"])
	require.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRequestLoggerElevatesServerErrors(t *testing.T) {
	app, logs := newObservedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/broken", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

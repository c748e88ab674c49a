package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Contadores(t *testing.T) {
	m := New()
	m.GateDecision("redirect_login")
	m.GateDecision("redirect_login")
	m.GateDecision("allow")
	m.ObserveBatch("ready", 3, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gate.WithLabelValues("redirect_login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.batches.WithLabelValues("ready")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveUpstream("GET", "/ventas", 200, 15*time.Millisecond)

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `embutidos_web_upstream_request_duration_seconds_count{method="GET",route="/ventas",status="200"} 1`)
}

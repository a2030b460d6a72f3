package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/pkg/metrics"
)

// *metrics.Metrics должен удовлетворять интерфейсу сборщика
var _ MetricsCollector = (*metrics.Metrics)(nil)

type collectorStub struct {
	calls   int
	method  string
	path    string
	status  string
	seconds float64
}

func (c *collectorStub) ObserveHTTPRequest(method, path, status string, seconds float64) {
	c.calls++
	c.method = method
	c.path = path
	c.status = status
	c.seconds = seconds
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	stub := &collectorStub{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(stub, "test-service"))
	r.HandleFunc("/reservations/{reservationId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/reservations/42", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, 1, stub.calls)
	assert.Equal(t, http.MethodDelete, stub.method)
	// Метка пути - шаблон роута, а не конкретный URL
	assert.Equal(t, "/reservations/{reservationId}", stub.path)
	assert.Equal(t, "204", stub.status)
	assert.GreaterOrEqual(t, stub.seconds, 0.0)
}

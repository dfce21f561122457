package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	server := NewServerMetrics(reg)
	backlog := NewOrderBacklog(reg)

	server.Requests.WithLabelValues("GET", "/health", "200").Inc()
	backlog.WithLabelValues("DELIVERING").Set(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(backlog.WithLabelValues("DELIVERING")))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `takeout_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `takeout_orders_by_status{status="DELIVERING"} 3`)
}

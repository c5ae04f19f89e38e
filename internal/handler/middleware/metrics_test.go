//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"highway-booking/internal/handler/middleware"
	"highway-booking/internal/pkg/metrics"
	"highway-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewMetrics()
	r := gin.New()
	r.Use(middleware.RequestMetrics(m))
	r.GET("/experiences/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, r, http.MethodGet, "/experiences/1", nil)
	httptest.PerformRequest(t, r, http.MethodGet, "/experiences/2", nil)
	httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil)

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/experiences/:id", http.MethodGet, "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")), 0)
}

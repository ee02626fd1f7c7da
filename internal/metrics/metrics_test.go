package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOrderPlaced(t *testing.T) {
	before := testutil.ToFloat64(ordersPlaced.WithLabelValues("Takeaway"))
	RecordOrderPlaced("Takeaway")
	assert.Equal(t, before+1, testutil.ToFloat64(ordersPlaced.WithLabelValues("Takeaway")))
}

func TestRecordStatusTransition(t *testing.T) {
	before := testutil.ToFloat64(statusTransitions.WithLabelValues("New", "Preparing"))
	RecordStatusTransition("New", "Preparing")
	assert.Equal(t, before+1, testutil.ToFloat64(statusTransitions.WithLabelValues("New", "Preparing")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/3", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping/:id", "200")), 1.0)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "restaurant_http_requests_total"))
}

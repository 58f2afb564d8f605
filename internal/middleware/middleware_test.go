package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	return r
}

func TestAccessControlHeaders(t *testing.T) {
	r := newEngine(AccessControlHeaders())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, allowHeaders, w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, allowMethods, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestRequestIDGenerated(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestIDPropagated(t *testing.T) {
	r := newEngine(RequestID())
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestRequestIDReplacesGarbage(t *testing.T) {
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid\n")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "not-a-uuid\n", w.Header().Get(RequestIDHeader))
}

func TestMetricsCountsRoute(t *testing.T) {
	r := newEngine(Metrics())
	counter := metrics.HTTPRequestsTotal.WithLabelValues("/ping", http.MethodGet, "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

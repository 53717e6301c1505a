package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-gateway/cmd/api/trace"
)

func newTestEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestTrace(), RequestLogging(), Recovery())
	r.GET("/test", handler)
	return r
}

func TestRequestTraceGeneratesRequestID(t *testing.T) {
	var ctxRequestID string
	r := newTestEngine(func(c *gin.Context) {
		ctxRequestID = trace.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

	headerID := recorder.Header().Get(trace.HeaderRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxRequestID)
	assert.Equal(t, "0", recorder.Header().Get(trace.HeaderSpanID))
}

func TestRequestTraceKeepsIncomingRequestID(t *testing.T) {
	r := newTestEngine(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(trace.HeaderRequestID, "incoming-id")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, "incoming-id", recorder.Header().Get(trace.HeaderRequestID))
}

func TestRecoveryReturnsGenericError(t *testing.T) {
	r := newTestEngine(func(c *gin.Context) {
		panic("boom: secret detail")
	})

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "internal server error"}, body)
	assert.NotContains(t, recorder.Body.String(), "secret")
}

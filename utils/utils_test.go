package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLimiter(t *testing.T) {
	limiter := NewKeyedLimiter(2)
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "keys have separate buckets")

	clock = clock.Add(30 * time.Second)
	assert.True(t, limiter.Allow("a"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analyze", RateLimitMiddleware(NewKeyedLimiter(1), func(c *gin.Context) string {
		return c.GetHeader("X-Session")
	}), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	send := func(session string) int {
		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		req.Header.Set("X-Session", session)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, send("s1"))
	assert.Equal(t, http.StatusTooManyRequests, send("s1"))
	assert.Equal(t, http.StatusNoContent, send("s2"))
	assert.Equal(t, http.StatusNoContent, send(""), "falls back to client IP")
}

func TestInferenceHTTPClient_SetsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := NewInferenceHTTPClient(5 * time.Second)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, UserAgent, got)
}

func TestInferenceTransport_KeepsCallerUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := &http.Client{Transport: InferenceTransport(nil, time.Nanosecond)}
	req, err := http.NewRequest(http.MethodPost, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "google-genai-sdk")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "google-genai-sdk", got)
}

func TestKeyedLimiter_Disabled(t *testing.T) {
	limiter := NewKeyedLimiter(0)
	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow("a"))
	}
}

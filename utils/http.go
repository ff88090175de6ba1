package utils

import (
	"crypto/tls"
	"log"
	"net/http"
	"time"
)

// UserAgent identifies this service to the inference API
const UserAgent = "Kusasa/1.0 (Cloud Run)"

// slowCall is the latency above which an inference round trip is logged
const slowCall = 20 * time.Second

// NewInferenceHTTPClient creates the HTTP client handed to the Gemini API SDK.
// A zero timeout leaves each call bounded only by its context.
func NewInferenceHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: InferenceTransport(transport, slowCall),
	}
}

// InferenceTransport sets the service user agent and logs failed or slow
// round trips. Request bodies carry CV content and are never logged.
func InferenceTransport(next http.RoundTripper, slow time.Duration) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &inferenceTransport{next: next, slow: slow, now: time.Now}
}

type inferenceTransport struct {
	next http.RoundTripper
	slow time.Duration
	now  func() time.Time
}

func (t *inferenceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	start := t.now()
	resp, err := t.next.RoundTrip(req)
	elapsed := t.now().Sub(start)

	switch {
	case err != nil:
		log.Printf("[HTTP] %s %s failed after %s: %v", req.Method, req.URL.Host, elapsed.Round(time.Millisecond), err)
	case resp.StatusCode >= http.StatusBadRequest:
		log.Printf("[HTTP] %s %s returned %d after %s", req.Method, req.URL.Host, resp.StatusCode, elapsed.Round(time.Millisecond))
	case t.slow > 0 && elapsed > t.slow:
		log.Printf("[HTTP] Slow call: %s %s took %s", req.Method, req.URL.Host, elapsed.Round(time.Millisecond))
	}
	return resp, err
}

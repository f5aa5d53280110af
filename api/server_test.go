package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func TestNewAPI(t *testing.T) {
	humaAPI, router := NewAPI()

	if humaAPI == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_ServesOpenAPISpec(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /openapi.json status = %d", rec.Code)
	}
}

func TestNewAPIWithMiddleware_CORSHeaders(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{Logger: nopLogger{}})

	req := httptest.NewRequest("OPTIONS", "/api/updates", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("preflight response missing CORS headers")
	}
}

func TestNewAPIWithMiddleware_RateLimiting(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{RateLimit: 1, RateBurst: 1})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(mockLogger{}, requestsPerMin)
	r.POST("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func post(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	// 60 req/min gives a burst of 6.
	r := newLimitedRouter(60)

	for i := 0; i < 6; i++ {
		if w := post(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
}

func TestRateLimitBlocksBeyondBurst(t *testing.T) {
	r := newLimitedRouter(10)

	// Burst floor is 1, so the second immediate request is rejected.
	if w := post(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", w.Code)
	}
	w := post(r, "10.0.0.1:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "rate limit exceeded") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRateLimitIsolatesClients(t *testing.T) {
	r := newLimitedRouter(10)

	if w := post(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
		t.Fatalf("client A: status = %d", w.Code)
	}
	if w := post(r, "10.0.0.1:1234"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("client A second: status = %d, want 429", w.Code)
	}
	// A different client still has its own budget.
	if w := post(r, "10.0.0.2:1234"); w.Code != http.StatusOK {
		t.Errorf("client B: status = %d, want 200", w.Code)
	}
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"solar_roi_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type stubHTTPConfig struct {
	perSecond float64
	burst     int
}

func (s stubHTTPConfig) GetHTTPAddr() string            { return ":0" }
func (s stubHTTPConfig) GetCORSAllowAll() bool          { return true }
func (s stubHTTPConfig) GetCORSOrigins() []string       { return nil }
func (s stubHTTPConfig) GetCORSAllowCreds() bool        { return false }
func (s stubHTTPConfig) GetRateLimitPerSecond() float64 { return s.perSecond }
func (s stubHTTPConfig) GetRateLimitBurst() int         { return s.burst }

type stubModule struct {
	registered bool
}

func (m *stubModule) Name() string { return "stub" }

func (m *stubModule) RegisterRoutes(ctx *RouterContext) {
	m.registered = true
	ctx.V1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
}

func newTestRouter(t *testing.T, cfg stubHTTPConfig, modules ...Module) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(cfg, logger.New("test"), modules)
}

func TestRouterHealth(t *testing.T) {
	engine := newTestRouter(t, stubHTTPConfig{perSecond: 100, burst: 100})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected security headers, got %q", got)
	}
}

func TestRouterMountsModules(t *testing.T) {
	module := &stubModule{}
	engine := newTestRouter(t, stubHTTPConfig{perSecond: 100, burst: 100}, module)

	if !module.registered {
		t.Fatal("expected module registration")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from module route, got %d", w.Code)
	}
}

func TestRouterRateLimits(t *testing.T) {
	engine := newTestRouter(t, stubHTTPConfig{perSecond: 1, burst: 1})

	first := httptest.NewRecorder()
	engine.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	second := httptest.NewRecorder()
	engine.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected second request limited, got %d", second.Code)
	}
}

//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix-funnel/internal/handler/httperr"
	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/jwt"
	testhttp "pix-funnel/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(discard))
	engine.Use(middleware.LoggingMiddleware(discard, config.NewTestConfig().Log))
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestRequireAdmin(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	engine := newEngine()
	engine.GET("/api/me", middleware.NewAuthMiddleware(svc).RequireAdmin(), func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})

	token, err := svc.GenerateToken("ops")
	assert.NoError(t, err)

	cases := []struct {
		name     string
		token    string
		wantCode int
		wantMsg  string
	}{
		{name: "valid token", token: token, wantCode: http.StatusOK},
		{name: "no token", token: "", wantCode: http.StatusUnauthorized, wantMsg: "Access token required"},
		{name: "foreign signature", token: mustToken(t, "other-secret"), wantCode: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := testhttp.PerformRequest(t, engine, http.MethodGet, "/api/me", nil, tc.token)
			if tc.wantCode == http.StatusOK {
				var body struct {
					Subject string `json:"subject"`
				}
				testhttp.AssertSuccessResponse(t, rec, http.StatusOK, &body)
				assert.Equal(t, "ops", body.Subject)
				return
			}
			testhttp.AssertErrorResponse(t, rec, tc.wantCode, tc.wantMsg)
		})
	}
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := jwt.NewService(secret, time.Hour).GenerateToken("ops")
	assert.NoError(t, err)
	return token
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := testhttp.PerformRequest(t, engine, http.MethodGet, "/boom", nil, "")
	testhttp.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler_RendersPublicError(t *testing.T) {
	engine := newEngine()
	engine.GET("/missing", func(c *gin.Context) {
		httperr.NotFound(c, errors.New("no such order"), "Payment not found")
	})

	rec := testhttp.PerformRequest(t, engine, http.MethodGet, "/missing", nil, "")
	testhttp.AssertErrorResponse(t, rec, http.StatusNotFound, "Payment not found")
}

func TestNoStore(t *testing.T) {
	engine := newEngine()
	engine.GET("/snapshot", middleware.NoStore(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	rec := testhttp.PerformRequest(t, engine, http.MethodGet, "/snapshot", nil, "")
	testhttp.AssertHeaders(t, rec, map[string]string{"Cache-Control": "no-store"})
}

func TestCORS_WildcardOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(cfg, discard))
	engine.GET("/api/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	engine := newEngine()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})

	cases := []struct {
		name     string
		upstream string
		wantEcho bool
	}{
		{name: "plain upstream id is kept", upstream: "gw-7f3a.42", wantEcho: true},
		{name: "missing id is generated", upstream: ""},
		{name: "unsafe id is replaced", upstream: "abc\r\ninjected: 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tc.upstream != "" {
				req.Header.Set("X-Request-ID", tc.upstream)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			var body struct {
				RequestID string `json:"request_id"`
			}
			testhttp.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, body.RequestID, rec.Header().Get("X-Request-ID"))
			if tc.wantEcho {
				assert.Equal(t, tc.upstream, body.RequestID)
				return
			}
			assert.NotEmpty(t, body.RequestID)
			assert.NotEqual(t, tc.upstream, body.RequestID)
		})
	}
}

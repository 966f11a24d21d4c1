package middleware

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	headerRequestID = "X-Request-ID"
	stackLines      = 12
)

// upstream ids are echoed back, so only plain tokens are trusted
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

type Logger struct {
	logger *slog.Logger
}

// NewLogger builds the process logger: JSON in release mode, text otherwise,
// timestamps rendered in the configured zone. It also becomes slog's default.
func NewLogger(cfg config.LogConfig) *Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return &Logger{logger: logger}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware reuses the process logger so request lines share its handler.
func LoggingMiddleware(slogger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if slogger == nil {
		return NewLogger(cfg).LoggingMiddleware()
	}
	return (&Logger{logger: slogger}).LoggingMiddleware()
}

// LoggingMiddleware tags every request with an id (the caller's X-Request-ID
// when it is a plain token) and logs one line per completed request. Health
// probes are logged at debug.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		requestID := requestIDFrom(c.GetHeader(headerRequestID))
		c.Set(ctxRequestIDKey, requestID)
		c.Header(headerRequestID, requestID)

		path := c.Request.URL.Path
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
		}
		if source, ok := strings.CutPrefix(path, "/webhook/"); ok {
			attrs = append(attrs, slog.String("webhook", source))
		}

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(started)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		// set by the auth middleware, so only known after c.Next
		if subject, role := extractAdminContext(c); subject != "" {
			attrs = append(attrs, slog.String("subject", subject), slog.String("role", role))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
			if status >= 500 {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(c.Errors.Last().Err, stackLines)))
			}
		}

		l.logger.LogAttrs(context.Background(), levelFor(path, status), "Request completed", attrs...)
	}
}

func levelFor(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case path == "/health":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func requestIDFrom(upstream string) string {
	if upstream = strings.TrimSpace(upstream); requestIDPattern.MatchString(upstream) {
		return upstream
	}
	return uuid.NewString()
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func extractAdminContext(c *gin.Context) (subject, role string) {
	claims, ok := c.Get("jwt_claims")
	if !ok {
		return "", ""
	}
	m, ok := claims.(map[string]any)
	if !ok {
		return "", ""
	}
	subject, _ = m["subject"].(string)
	role, _ = m["role"].(string)
	return subject, role
}

package sentry

import (
	"fmt"
	"time"

	"ajcc-portal/config"
	"ajcc-portal/internal/global/response"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// CodedError lets us skip reporting plain business errors (4xx codes).
type CodedError interface {
	error
	GetCode() int32
}

// Init initializes the Sentry SDK. A missing DSN disables reporting entirely.
func Init() error {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}

	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          "ajcc-portal@1.0.0",
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// Middleware returns the Sentry gin middleware, or a no-op when disabled.
func Middleware() gin.HandlerFunc {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// ErrorReporter forwards the error a handler stored in the context (see
// response.Fail) once the request finishes. Mounted after the Sentry gin
// middleware so a hub is present.
func ErrorReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if stored, ok := c.Get(response.ErrorContextKey); ok {
			if err, ok := stored.(error); ok {
				CaptureException(c, err)
			}
		}
	}
}

// CaptureException reports a server error to Sentry with request context.
// Business errors (codes below 50000) are not reported.
func CaptureException(c *gin.Context, err error) {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return
	}
	if !shouldReport(err) {
		return
	}

	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetRequest(c.Request)
			scope.SetTag("path", c.Request.URL.Path)
			scope.SetTag("method", c.Request.Method)
			hub.CaptureException(err)
		})
	}
}

func shouldReport(err error) bool {
	var coded CodedError
	if ok := asCodedError(err, &coded); ok {
		return coded.GetCode() >= 50000
	}
	return true
}

func asCodedError(err error, target *CodedError) bool {
	for err != nil {
		if ce, ok := err.(CodedError); ok {
			*target = ce
			return true
		}
		type unwrapper interface{ Unwrap() error }
		u, ok := err.(unwrapper)
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

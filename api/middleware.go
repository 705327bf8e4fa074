/*
middleware.go - Structured request logging

PURPOSE:
  Replaces chi's plain-text Logger with a zap-backed one so request logs
  share the format and sinks of the rest of the application.

LOG LEVELS BY STATUS:
  2xx/3xx  info
  4xx      warn  (caller error, worth counting, not alarming)
  5xx      error
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger logs one structured line per request.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			}

			switch {
			case ww.Status() >= 500:
				logger.Error("request", fields...)
			case ww.Status() >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
		})
	}
}

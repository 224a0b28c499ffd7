package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fulldump/box"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

func RecoverFromPanic(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			defer func() {
				if err := recover(); err != nil {
					l.Error("panic serving request", "panic", err, "stack", string(debug.Stack()))
					box.SetError(ctx, fmt.Errorf("panic: %v", err))
				}
			}()
			next(ctx)
		}
	}
}

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			c := box.GetBoxContext(ctx)
			r := c.Request

			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			rw := &statusRecorder{ResponseWriter: c.Response, status: http.StatusOK}
			rw.Header().Set(HeaderRequestID, requestID)
			c.Response = rw

			now := time.Now()
			defer func() {
				l.Info("access",
					"request_id", requestID,
					"remote", formatRemoteAddr(r),
					"method", r.Method,
					"url", r.URL.String(),
					"status", rw.status,
					"took", time.Since(now),
				)
			}()

			next(ctx)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	i := strings.LastIndex(r.RemoteAddr, ":")
	if i < 0 {
		return r.RemoteAddr
	}
	return r.RemoteAddr[0:i]
}

package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-api/pkg/transport/httpx"
	"go.uber.org/zap"
)

// Middleware writes one access-log entry per request.
type Middleware struct {
	log *zap.Logger
}

// New returns an access-log middleware writing to l (nop when nil).
func New(l *zap.Logger) *Middleware {
	if l == nil {
		l = zap.NewNop()
	}
	return &Middleware{log: l}
}

func (m *Middleware) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			// Read and RESTORE request body so the endpoint can parse it
			var body []byte
			if r.Body != nil && wantsBody(r) {
				body, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
				r.Body = restoreBody(r.Body, body)
			}

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}

			ctx, slot := withEndpointSlot(r.Context())
			r = r.WithContext(ctx)

			start := time.Now()
			defer func() {
				fields := []zap.Field{
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.String("route", httpx.RoutePattern(r)),
					zap.String("endpoint", slot.name),
					zap.Duration("lat", time.Since(start)),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				}
				// Redact by default; allowlist small bodies only.
				if shouldLogBody(r, body) {
					fields = append(fields, zap.ByteString("requestData", body))
				}
				m.log.Info("request", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// restoreBody puts the consumed prefix back in front of whatever is left.
func restoreBody(orig io.ReadCloser, consumed []byte) io.ReadCloser {
	return struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(consumed), orig), orig}
}

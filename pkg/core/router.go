// core/router.go
package core

import (
	"context"
	"errors"
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
	"github.com/joeydtaylor/steeze-api/pkg/middleware/logger"
	hmetrics "github.com/joeydtaylor/steeze-api/pkg/middleware/metrics"
	"go.uber.org/zap"
)

// statusClientClosedRequest answers requests whose client went away before
// the handler finished (nginx convention).
const statusClientClosedRequest = 499

// wrapEndpoint adapts a bound endpoint to net/http: parse form data, call the
// handler with the shared state, render the Response.
func wrapEndpoint(b Bound, st *endpoint.State, maxBody int64, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.SetEndpoint(r.Context(), b.Name)

		form, err := parseForm(w, r, maxBody)
		if err != nil {
			var re *requestError
			status := http.StatusBadRequest
			if errors.As(err, &re) {
				status = re.status
			}
			hmetrics.ObserveEndpoint(b.Name, "error")
			writeError(w, status, err.Error())
			return
		}

		st.Hit()
		ctx := r.Context()
		res, err := b.Endpoint.Handler(ctx, st, r, form)
		if err != nil {
			canceled := errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled)
			if canceled {
				hmetrics.ObserveEndpoint(b.Name, "canceled")
			} else {
				hmetrics.ObserveEndpoint(b.Name, "error")
			}
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.Warn("endpoint timed out",
					zap.String("endpoint", b.Name),
					zap.String("requestId", chimd.GetReqID(ctx)),
					zap.Error(err),
				)
				writeError(w, http.StatusGatewayTimeout, "timeout")
				return
			}
			if canceled {
				log.Debug("endpoint canceled",
					zap.String("endpoint", b.Name),
					zap.String("requestId", chimd.GetReqID(ctx)),
					zap.Error(err),
				)
				w.WriteHeader(statusClientClosedRequest)
				return
			}
			log.Error("endpoint failed",
				zap.String("endpoint", b.Name),
				zap.String("requestId", chimd.GetReqID(ctx)),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "server error")
			return
		}

		kind, err := render(w, res)
		if err != nil {
			hmetrics.ObserveEndpoint(b.Name, "error")
			log.Error("endpoint response not renderable",
				zap.String("endpoint", b.Name),
				zap.String("requestId", chimd.GetReqID(ctx)),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "server error")
			return
		}
		hmetrics.ObserveEndpoint(b.Name, kind)
	}
}

package core

import (
	"fmt"
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
	manifest "github.com/joeydtaylor/steeze-api/pkg/manifest"
	hmetrics "github.com/joeydtaylor/steeze-api/pkg/middleware/metrics"
	"go.uber.org/zap"
)

const (
	pingPath    = "/ping"
	metricsPath = "/metrics"
)

// mount is one resolved method+path binding.
type mount struct {
	path    string
	methods []string
	timeout time.Duration
	bound   Bound
}

// BuildRouter discovers every registered endpoint against d.State and mounts
// them. Without [[route]] entries each endpoint is served at /<name>.
func BuildRouter(cfg manifest.Config, d BuildDeps) (http.Handler, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	if d.Registry == nil {
		return nil, fmt.Errorf("%w: no registry", ErrBadRegistration)
	}

	bound, err := Discover(d.Registry, d.State)
	if err != nil {
		return nil, err
	}
	mounts, err := resolveMounts(cfg, bound)
	if err != nil {
		return nil, err
	}

	r := d.Router
	r.Use(chimd.RequestID, chimd.Heartbeat(pingPath))
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware())
	}
	r.Use(hmetrics.Collect())
	// Recoverer sits inside the observers so a panic is logged and counted as 500.
	r.Use(chimd.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	if d.Metrics != nil {
		r.Handle(http.MethodGet, metricsPath, d.Metrics)
	}

	for _, m := range mounts {
		h := withTimeout(wrapEndpoint(m.bound, d.State, cfg.Server.MaxBodyBytes, log), m.timeout)
		for _, method := range m.methods {
			r.Handle(method, m.path, h)
		}
		log.Info("endpoint mounted",
			zap.String("endpoint", m.bound.Name),
			zap.String("description", m.bound.Endpoint.Description),
			zap.String("path", m.path),
			zap.Strings("methods", m.methods),
			zap.Duration("timeout", m.timeout),
		)
	}
	return r.Mux(), nil
}

func resolveMounts(cfg manifest.Config, bound []Bound) ([]mount, error) {
	byName := make(map[string]Bound, len(bound))
	for _, b := range bound {
		byName[b.Name] = b
	}

	var out []mount
	if len(cfg.Routes) == 0 {
		for _, b := range bound {
			out = append(out, mount{path: "/" + b.Name, methods: b.Endpoint.AllowedMethods(), bound: b})
		}
	} else {
		for i, rt := range cfg.Routes {
			b, ok := byName[rt.Endpoint]
			if !ok {
				return nil, fmt.Errorf("route %d (%s): %w: %q", i, rt.Path, ErrUnknownEndpoint, rt.Endpoint)
			}
			methods := rt.Methods
			if len(methods) == 0 {
				methods = b.Endpoint.AllowedMethods()
			}
			out = append(out, mount{
				path:    rt.Path,
				methods: methods,
				timeout: time.Duration(rt.Policy.TimeoutMS) * time.Millisecond,
				bound:   b,
			})
		}
	}

	seen := map[string]string{}
	for _, m := range out {
		if m.path == pingPath || m.path == metricsPath {
			return nil, fmt.Errorf("endpoint %q: path %s is reserved", m.bound.Name, m.path)
		}
		for _, method := range m.methods {
			if !endpoint.KnownMethod(method) {
				return nil, fmt.Errorf("endpoint %q: unknown method %q", m.bound.Name, method)
			}
			key := method + " " + m.path
			if prev, dup := seen[key]; dup {
				return nil, fmt.Errorf("%s bound to both %q and %q", key, prev, m.bound.Name)
			}
			seen[key] = m.bound.Name
		}
	}
	return out, nil
}

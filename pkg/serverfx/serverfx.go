package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-api/pkg/core"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
	"github.com/joeydtaylor/steeze-api/pkg/manifest"
	"github.com/joeydtaylor/steeze-api/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-api/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---- Manifest / state / registry ----

func provideManifest(cfg Config, zl *zap.Logger) (manifest.Config, error) {
	path := envOr(cfg.ManifestEnv, cfg.DefaultManifest)
	man, err := core.LoadConfig(path)
	if err != nil {
		zl.Error("manifest load failed", zap.Error(err), zap.String("path", path))
		return manifest.Config{}, err
	}
	zl.Info("manifest loaded",
		zap.String("service", cfg.Service),
		zap.String("path", path),
		zap.Int("routes", len(man.Routes)),
	)
	return man, nil
}

// provideState creates the one State instance shared by every endpoint.
func provideState(man manifest.Config) *endpoint.State { return man.NewState() }

func provideRegistry(cfg Config) (*core.Registry, error) {
	return core.NewRegistry(cfg.Modules...)
}

// ---- Router ----

type routerDeps struct {
	fx.In

	Manifest manifest.Config
	State    *endpoint.State
	Registry *core.Registry
	LogMW    *logger.Middleware
	Metrics  http.Handler `name:"metrics"`
	R        httpx.Router
	Log      *zap.Logger
}

func provideRouter(d routerDeps) (http.Handler, error) {
	h, err := core.BuildRouter(d.Manifest, core.BuildDeps{
		LogMW:    d.LogMW,
		Metrics:  d.Metrics,
		Router:   d.R,
		Log:      d.Log,
		State:    d.State,
		Registry: d.Registry,
	})
	if err != nil {
		d.Log.Error("router build failed", zap.Error(err))
		return nil, err
	}
	return h, nil
}

// ---- Server lifecycle ----

type serverDeps struct {
	fx.In
	Cfg      Config
	Manifest manifest.Config
	Logger   *zap.Logger
	App      http.Handler `name:"app"`
}

func newServer(d serverDeps) *http.Server {
	return &http.Server{
		Addr:         envOr(d.Cfg.ListenEnv, d.Manifest.Addr()),
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	srv := newServer(d)
	cert := os.Getenv(d.Cfg.TLSCertEnv)
	key := os.Getenv(d.Cfg.TLSKeyEnv)
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// Bind synchronously so a busy port fails startup.
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", d.Cfg.Service),
					zap.String("addr", ln.Addr().String()),
					zap.String("cert", cert),
				)
				go func() {
					if err := srv.ServeTLS(ln, cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
				return nil
			}
			d.Logger.Info("server starting (PLAINTEXT)",
				zap.String("service", d.Cfg.Service),
				zap.String("addr", ln.Addr().String()),
			)
			srv.TLSConfig = nil
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					d.Logger.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Cfg.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---- helpers ----

func envOr(k, def string) string {
	if k == "" {
		return def
	}
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

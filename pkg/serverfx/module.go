package serverfx

import (
	"github.com/joeydtaylor/steeze-api/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
	"github.com/joeydtaylor/steeze-api/pkg/transport/httpx"
	"go.uber.org/fx"
)

// ---------- Options ----------

type Config struct {
	Service         string // for logs only
	ManifestEnv     string // e.g. APP_MANIFEST
	DefaultManifest string // e.g. "manifest.toml"
	ListenEnv       string // overrides [server] bind_ip/bind_port when set
	TLSCertEnv      string // SSL_SERVER_CERTIFICATE
	TLSKeyEnv       string // SSL_SERVER_KEY
	Modules         []endpoint.Module
}

type Option func(*Config)

func WithService(s string) Option            { return func(c *Config) { c.Service = s } }
func WithManifestEnv(k string) Option        { return func(c *Config) { c.ManifestEnv = k } }
func WithDefaultManifest(path string) Option { return func(c *Config) { c.DefaultManifest = path } }
func WithListenEnv(k string) Option          { return func(c *Config) { c.ListenEnv = k } }
func WithTLSCertKeyEnv(cert, key string) Option {
	return func(c *Config) { c.TLSCertEnv, c.TLSKeyEnv = cert, key }
}

// WithModules adds endpoint modules to the registry. Order does not matter;
// names must be unique.
func WithModules(mods ...endpoint.Module) Option {
	return func(c *Config) { c.Modules = append(c.Modules, mods...) }
}

func defaultConfig() Config {
	return Config{
		Service:         "app",
		ManifestEnv:     "APP_MANIFEST",
		DefaultManifest: "manifest.toml",
		ListenEnv:       "SERVER_LISTEN_ADDRESS",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

// Module returns a complete Fx option set; add app-specific fx.Invoke(...) alongside.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		// Logging + metrics
		bundlefx.Module,
		// Router impl
		fx.Provide(httpx.NewChi),
		// Config into DI
		fx.Supply(cfg),
		// Manifest, shared state, endpoint registry
		fx.Provide(provideManifest, provideState, provideRegistry),
		// Router
		fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

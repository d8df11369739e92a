// Command steeze-api serves the bundled endpoints on the address configured
// in the manifest (APP_MANIFEST, default manifest.toml).
package main

import (
	"github.com/joeydtaylor/steeze-api/endpoints/example"
	"github.com/joeydtaylor/steeze-api/pkg/serverfx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		serverfx.Module(
			serverfx.WithService("steeze-api"),
			serverfx.WithModules(example.Module),
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
	).Run()
}

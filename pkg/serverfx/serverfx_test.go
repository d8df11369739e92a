package serverfx

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/joeydtaylor/steeze-api/endpoints/example"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
	"github.com/joeydtaylor/steeze-api/pkg/middleware/logger"
)

type appOut struct {
	fx.In
	App   http.Handler `name:"app"`
	State *endpoint.State
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestModuleGraphIsComplete(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Module(WithModules(example.Module))))
}

func TestModuleServesExample(t *testing.T) {
	logger.LogDir = t.TempDir()
	t.Setenv("APP_MANIFEST", writeManifest(t, `
[state]
something = "stateful"
`))
	t.Setenv("SERVER_LISTEN_ADDRESS", "127.0.0.1:0")

	var out appOut
	app := fxtest.New(t,
		Module(WithService("test"), WithModules(example.Module)),
		fx.Invoke(func(o appOut) { out = o }),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, "stateful", out.State.Something)

	rec := httptest.NewRecorder()
	out.App.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/example?format=text", nil))
	assert.Equal(t, "This is an example string", rec.Body.String())
	assert.EqualValues(t, 1, out.State.Hits())
}

func TestModuleFailsOnBadManifest(t *testing.T) {
	logger.LogDir = t.TempDir()
	t.Setenv("APP_MANIFEST", writeManifest(t, `
[[route]]
path = "/x"
endpoint = "missing"
`))
	t.Setenv("SERVER_LISTEN_ADDRESS", "127.0.0.1:0")

	app := fx.New(
		fx.NopLogger,
		Module(WithModules(example.Module)),
	)
	require.Error(t, app.Err())
}

func TestModuleFailsOnDuplicateModules(t *testing.T) {
	logger.LogDir = t.TempDir()
	t.Setenv("APP_MANIFEST", filepath.Join(t.TempDir(), "absent.toml"))

	app := fx.New(
		fx.NopLogger,
		Module(WithModules(example.Module, example.Module)),
	)
	require.Error(t, app.Err())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("STEEZE_TEST_ENV", "set")
	assert.Equal(t, "set", envOr("STEEZE_TEST_ENV", "def"))
	assert.Equal(t, "def", envOr("STEEZE_TEST_UNSET", "def"))
	assert.Equal(t, "def", envOr("", "def"))
}

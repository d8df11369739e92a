package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	var c Config
	require.NoError(t, c.Validate())
	assert.Equal(t, "127.0.0.1:8080", c.Addr())
	assert.EqualValues(t, DefaultMaxBodyBytes, c.Server.MaxBodyBytes)
}

func TestValidateServer(t *testing.T) {
	for _, port := range []string{"0", "65536", "http", "-1"} {
		c := Config{Server: Server{BindPort: port}}
		assert.Error(t, c.Validate(), "port %q", port)
	}

	c := Config{Server: Server{BindIP: " 0.0.0.0 ", BindPort: "9000"}}
	require.NoError(t, c.Validate())
	assert.Equal(t, "0.0.0.0:9000", c.Addr())

	c = Config{Server: Server{MaxBodyBytes: -5}}
	assert.Error(t, c.Validate())
}

func TestValidateRoutes(t *testing.T) {
	t.Run("normalizes", func(t *testing.T) {
		c := Config{Routes: []Route{
			{Path: "api//example/", Endpoint: " example ", Methods: []string{"get", " post"}},
			{Endpoint: "other"},
		}}
		require.NoError(t, c.Validate())
		assert.Equal(t, "/api/example", c.Routes[0].Path)
		assert.Equal(t, "example", c.Routes[0].Endpoint)
		assert.Equal(t, []string{"GET", "POST"}, c.Routes[0].Methods)
		assert.Equal(t, "/other", c.Routes[1].Path)
	})

	t.Run("endpoint required", func(t *testing.T) {
		c := Config{Routes: []Route{{Path: "/x"}}}
		assert.ErrorContains(t, c.Validate(), "endpoint is required")
	})

	t.Run("path or endpoint required", func(t *testing.T) {
		c := Config{Routes: []Route{{}}}
		assert.ErrorContains(t, c.Validate(), "path is required")
	})

	t.Run("unknown method", func(t *testing.T) {
		c := Config{Routes: []Route{{Path: "/x", Endpoint: "x", Methods: []string{"FETCH"}}}}
		assert.ErrorContains(t, c.Validate(), "unknown method")
	})

	t.Run("negative timeout", func(t *testing.T) {
		c := Config{Routes: []Route{{Path: "/x", Endpoint: "x", Policy: Policy{TimeoutMS: -1}}}}
		assert.ErrorContains(t, c.Validate(), "timeout_ms")
	})

	t.Run("duplicate", func(t *testing.T) {
		c := Config{Routes: []Route{
			{Path: "/x", Endpoint: "a", Methods: []string{"GET"}},
			{Path: "/x/", Endpoint: "b", Methods: []string{"get"}},
		}}
		assert.ErrorContains(t, c.Validate(), "duplicates")
	})
}

func TestNewState(t *testing.T) {
	c := Config{State: StateSpec{Something: "stateful", Values: map[string]string{"k": "v"}}}
	st := c.NewState()
	assert.Equal(t, "stateful", st.Something)
	v, ok := st.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

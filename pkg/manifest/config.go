package manifest

import (
	"net"

	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

// Config is the top-level manifest.
type Config struct {
	Server Server    `toml:"server"`
	State  StateSpec `toml:"state"`
	Routes []Route   `toml:"route"`
}

// Validate normalizes defaults in place and reports the first problem found.
// Routes are optional: without them every registered endpoint is mounted
// under /<name>.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}
	return c.validateRoutes()
}

// Addr is the host:port the server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.BindIP, c.Server.BindPort)
}

// NewState builds the shared application state described by [state].
func (c Config) NewState() *endpoint.State {
	return endpoint.NewState(c.State.Something, c.State.Values)
}

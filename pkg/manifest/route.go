package manifest

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

// Route binds an HTTP path to a registered endpoint.
type Route struct {
	Path     string   `toml:"path"`
	Endpoint string   `toml:"endpoint"`
	Methods  []string `toml:"methods"`
	Policy   Policy   `toml:"policy"`
	Tags     []string `toml:"tags"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

// normalize path/methods/endpoint
func (r *Route) normalize() error {
	r.Endpoint = strings.TrimSpace(r.Endpoint)
	if r.Path == "" {
		if r.Endpoint == "" {
			return errors.New("path is required")
		}
		r.Path = "/" + r.Endpoint
	}
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/" + r.Path
	}
	if r.Path != "/" {
		r.Path = path.Clean(r.Path)
	}
	for i, m := range r.Methods {
		r.Methods[i] = strings.ToUpper(strings.TrimSpace(m))
	}
	return nil
}

// validate fields that are independent of the registry.
func (r *Route) validate() error {
	if r.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	for _, m := range r.Methods {
		if !endpoint.KnownMethod(m) {
			return fmt.Errorf("unknown method %q", m)
		}
	}
	if r.Policy.TimeoutMS < 0 {
		return errors.New("policy.timeout_ms must be >= 0")
	}
	return nil
}

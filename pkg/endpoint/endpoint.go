// Package endpoint defines the contract between the server and pluggable
// request handlers.
//
// A Module is a named unit exposing Register. At startup the server calls
// Register exactly once with the shared *State; the returned Endpoint wraps
// the HandlerFunc that serves every matching request:
//
//	var Module = endpoint.Module{
//		Name: "hello",
//		Register: func(*endpoint.State) endpoint.Endpoint {
//			return endpoint.New(func(ctx context.Context, st *endpoint.State, r *http.Request, f endpoint.Form) (endpoint.Response, error) {
//				return endpoint.Text("hello " + f.GetOr("name", "world")), nil
//			})
//		},
//	}
package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrNoHandler = errors.New("endpoint has no handler")

// HandlerFunc serves one request. It must return a Response on every
// successful path; a non-nil error is turned into a server error response.
type HandlerFunc func(ctx context.Context, st *State, r *http.Request, form Form) (Response, error)

// Endpoint is the descriptor returned by a module's Register function.
type Endpoint struct {
	Handler     HandlerFunc
	Methods     []string // empty means DefaultMethods
	Description string
}

// RegisterFunc binds a module to the shared state.
type RegisterFunc func(st *State) Endpoint

type Module struct {
	Name     string
	Register RegisterFunc
}

// DefaultMethods are used when an Endpoint does not name its own.
var DefaultMethods = []string{http.MethodGet, http.MethodPost}

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// New wraps a handler in an Endpoint with default methods.
func New(h HandlerFunc) Endpoint { return Endpoint{Handler: h} }

// KnownMethod reports whether m (already upper-cased) is servable.
func KnownMethod(m string) bool {
	_, ok := knownMethods[m]
	return ok
}

// Validate rejects descriptors the server cannot mount.
func (e Endpoint) Validate() error {
	if e.Handler == nil {
		return ErrNoHandler
	}
	for _, m := range e.Methods {
		if !KnownMethod(strings.ToUpper(strings.TrimSpace(m))) {
			return fmt.Errorf("unknown method %q", m)
		}
	}
	return nil
}

// AllowedMethods returns the normalized method list for the endpoint.
func (e Endpoint) AllowedMethods() []string {
	if len(e.Methods) == 0 {
		return append([]string(nil), DefaultMethods...)
	}
	out := make([]string, 0, len(e.Methods))
	for _, m := range e.Methods {
		out = append(out, strings.ToUpper(strings.TrimSpace(m)))
	}
	return out
}

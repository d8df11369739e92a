package core

import (
	"fmt"

	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

// Bound is an endpoint whose module has been registered against the state.
type Bound struct {
	Name     string
	Endpoint endpoint.Endpoint
}

// Discover calls Register exactly once for every module in reg, in name
// order, and validates the returned descriptors. Any malformed registration,
// including a Register that panics, fails the whole discovery.
func Discover(reg *Registry, st *endpoint.State) ([]Bound, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: no registry", ErrBadRegistration)
	}
	if st == nil {
		return nil, fmt.Errorf("%w: nil state", ErrBadRegistration)
	}
	names := reg.Names()
	out := make([]Bound, 0, len(names))
	for _, n := range names {
		m, _ := reg.Lookup(n)
		e, err := register(m, st)
		if err == nil {
			err = e.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadRegistration, n, err)
		}
		out = append(out, Bound{Name: n, Endpoint: e})
	}
	return out, nil
}

func register(m endpoint.Module, st *endpoint.State) (e endpoint.Endpoint, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("register panicked: %v", p)
		}
	}()
	return m.Register(st), nil
}

package logger

import "context"

type endpointKey struct{}

// endpointSlot is filled in by the handler once routing has picked an endpoint.
type endpointSlot struct {
	name string
}

func withEndpointSlot(ctx context.Context) (context.Context, *endpointSlot) {
	s := &endpointSlot{}
	return context.WithValue(ctx, endpointKey{}, s), s
}

// SetEndpoint records the endpoint serving the request so the access-log entry
// can name it. It is a no-op outside the access-log middleware.
func SetEndpoint(ctx context.Context, name string) {
	if s, ok := ctx.Value(endpointKey{}).(*endpointSlot); ok {
		s.name = name
	}
}

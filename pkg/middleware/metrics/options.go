package metrics

import (
	"net/http"
	"strings"
	"sync"

	"github.com/joeydtaylor/steeze-api/pkg/transport/httpx"
)

const unmatchedRoute = "unmatched"

var (
	skipMu    sync.RWMutex
	skipPaths = map[string]struct{}{"/metrics": {}, "/ping": {}}

	normMu         sync.RWMutex
	pathNormalizer = defaultNormalizer
)

// defaultNormalizer labels by the matched route pattern so unknown paths
// collapse into a single series.
func defaultNormalizer(r *http.Request) string {
	if p := httpx.RoutePattern(r); p != "" {
		return p
	}
	return unmatchedRoute
}

// AddMetricsSkipPaths lets callers extend the skip list.
func AddMetricsSkipPaths(paths ...string) {
	skipMu.Lock()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			skipPaths[p] = struct{}{}
		}
	}
	skipMu.Unlock()
}

// SetPathNormalizer overrides how the uri label is derived. nil restores the default.
func SetPathNormalizer(fn func(*http.Request) string) {
	if fn == nil {
		fn = defaultNormalizer
	}
	normMu.Lock()
	pathNormalizer = fn
	normMu.Unlock()
}

func isSkipPath(r *http.Request) bool {
	p := r.URL.Path
	skipMu.RLock()
	_, ok := skipPaths[p]
	skipMu.RUnlock()
	return ok
}

func normalizePath(r *http.Request) string {
	normMu.RLock()
	fn := pathNormalizer
	normMu.RUnlock()
	return fn(r)
}

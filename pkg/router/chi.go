// pkg/router/chi.go
package router

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Matcher is the route-matching contract the dispatcher consumes.
type Matcher interface {
	Handle(method, pattern string, h HandlerRef)
	Match(method, path string) Outcome
}

// chiMatcher backs Matcher with chi's routing trie. The mux is used only
// for matching; handlers are kept in a side table keyed by method and
// route pattern.
type chiMatcher struct {
	mu      sync.RWMutex
	mx      *chi.Mux
	refs    map[string]HandlerRef
	methods []string // distinct methods in registration order; drives the Allow order
}

// NewChi returns a chi-backed Matcher.
func NewChi() Matcher {
	return &chiMatcher{
		mx:   chi.NewRouter(),
		refs: map[string]HandlerRef{},
	}
}

func (c *chiMatcher) Handle(method, pattern string, h HandlerRef) {
	method = strings.ToUpper(strings.TrimSpace(method))
	c.mu.Lock()
	defer c.mu.Unlock()
	// chi requires some handler; matching never invokes it.
	c.mx.Method(method, pattern, http.NotFoundHandler())
	c.refs[method+" "+pattern] = h
	for _, m := range c.methods {
		if m == method {
			return
		}
	}
	c.methods = append(c.methods, method)
}

func (c *chiMatcher) Match(method, path string) Outcome {
	method = strings.ToUpper(strings.TrimSpace(method))
	c.mu.RLock()
	defer c.mu.RUnlock()

	rctx := chi.NewRouteContext()
	if c.mx.Match(rctx, method, path) {
		pattern := rctx.RoutePattern()
		out := Found(c.refs[method+" "+pattern], Params{
			Keys:   append([]string(nil), rctx.URLParams.Keys...),
			Values: append([]string(nil), rctx.URLParams.Values...),
		})
		out.Pattern = pattern
		return out
	}

	// Probe the other registered methods to build the Allow set.
	var allowed []string
	for _, m := range c.methods {
		if m == method {
			continue
		}
		if c.mx.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	if len(allowed) > 0 {
		return MethodNotAllowed(allowed...)
	}
	return NotFound()
}

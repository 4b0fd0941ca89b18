package metrics

import (
	"net/http"
	"strings"
)

// CollectOption configures one Collect middleware instance.
type CollectOption func(*collector)

type collector struct {
	skip      map[string]struct{}
	normalize func(*http.Request) string
}

func newCollector(opts ...CollectOption) *collector {
	c := &collector{
		// Never count self-scrapes.
		skip:      map[string]struct{}{"/metrics": {}},
		normalize: func(r *http.Request) string { return r.URL.Path },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithSkipPaths extends the skip list beyond the default "/metrics".
func WithSkipPaths(paths ...string) CollectOption {
	return func(c *collector) {
		for _, p := range paths {
			p = strings.TrimSpace(p)
			if p != "" {
				c.skip[p] = struct{}{}
			}
		}
	}
}

// WithPathNormalizer replaces the uri label source, e.g. collapsing IDs
// onto their route pattern. The default reports r.URL.Path unchanged.
func WithPathNormalizer(fn func(*http.Request) string) CollectOption {
	return func(c *collector) {
		if fn != nil {
			c.normalize = fn
		}
	}
}

func (c *collector) skipped(r *http.Request) bool {
	_, ok := c.skip[r.URL.Path]
	return ok
}

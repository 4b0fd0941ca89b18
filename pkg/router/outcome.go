// pkg/router/outcome.go
package router

import "context"

// Status tags the three legal results of matching method+path. The zero
// value is deliberately not a legal tag: a zero Outcome reaching the
// dispatcher means the router contract was breached.
type Status int

const (
	StatusNotFound Status = iota + 1
	StatusMethodNotAllowed
	StatusFound
)

// InlineFunc is a route handler invoked directly, with no argument
// binding. It receives only the request context; anything else it needs
// must be closed over at registration.
type InlineFunc func(ctx context.Context) (any, error)

// HandlerRef points at the code to run for a matched route: either an
// inline func, or a (target type, method name) pair resolved through the
// container at dispatch time.
type HandlerRef struct {
	Fn     InlineFunc
	Target string
	Method string
}

func Inline(fn InlineFunc) HandlerRef { return HandlerRef{Fn: fn} }

func Bound(target, method string) HandlerRef {
	return HandlerRef{Target: target, Method: method}
}

func (h HandlerRef) IsInline() bool { return h.Fn != nil }

// Owner names the handler for diagnostics, "Target::Method" form.
func (h HandlerRef) Owner() string {
	if h.IsInline() {
		return "inline"
	}
	return h.Target + "::" + h.Method
}

// Params carries matched path parameters in match order. Keys and Values
// run parallel, so a value is addressable both by position and by name.
// Lookups report presence explicitly; an empty string is a legitimate
// bound value, not an absence.
type Params struct {
	Keys   []string
	Values []string
}

func (p Params) Len() int { return len(p.Values) }

func (p Params) ByIndex(i int) (string, bool) {
	if i < 0 || i >= len(p.Values) {
		return "", false
	}
	return p.Values[i], true
}

func (p Params) ByName(name string) (string, bool) {
	for i, k := range p.Keys {
		if k == name && i < len(p.Values) {
			return p.Values[i], true
		}
	}
	return "", false
}

// Outcome is the result of matching a request's method and path.
// Immutable once constructed; consumed exactly once per request.
type Outcome struct {
	Status  Status
	Allowed []string   // MethodNotAllowed only, in registration order
	Handler HandlerRef // Found only
	Params  Params     // Found only
	Pattern string     // Found only: the registered pattern that matched
}

func NotFound() Outcome { return Outcome{Status: StatusNotFound} }

func MethodNotAllowed(allowed ...string) Outcome {
	return Outcome{Status: StatusMethodNotAllowed, Allowed: allowed}
}

func Found(h HandlerRef, p Params) Outcome {
	return Outcome{Status: StatusFound, Handler: h, Params: p}
}

// pkg/dispatch/core.go
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ericjank/hyperf/pkg/codec"
	"github.com/ericjank/hyperf/pkg/router"
	"github.com/ericjank/hyperf/pkg/transport/httpx"
	"go.uber.org/zap"
)

// DefaultServerName is the Server header value when none is configured.
const DefaultServerName = "hyperf"

// Diagnostic body for a route that resolved to a target without the
// named method. Deliberately fixed: route configuration errors should
// not echo internals to clients.
const methodMissingBody = "handler method not defined"

// Core runs one request through the dispatch pipeline: interpret the
// route outcome, invoke on Found, normalize the raw result, finalize.
// One Core serves all requests; it holds no per-request state.
type Core struct {
	invoker *Invoker
	norm    Normalizer
	server  string
	log     *zap.Logger
}

type CoreOption func(*Core)

// WithServerName sets the Server identification header value.
func WithServerName(name string) CoreOption {
	return func(c *Core) {
		if strings.TrimSpace(name) != "" {
			c.server = name
		}
	}
}

func WithLogger(l *zap.Logger) CoreOption {
	return func(c *Core) {
		if l != nil {
			c.log = l
		}
	}
}

func NewCore(inv *Invoker, opts ...CoreOption) *Core {
	c := &Core{
		invoker: inv,
		server:  DefaultServerName,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dispatch consumes the outcome seeded at entry and produces the final
// response. Callers guarantee exactly one invocation per request; the
// Server header append is not idempotent.
//
// A recoverable failure (bind, conversion, construction, handler error)
// returns a non-nil error for the enclosing middleware; see
// FailureResponse. An outcome carrying an unknown tag is a breach of
// the router contract and panics.
func (c *Core) Dispatch(ctx context.Context) (*httpx.Response, error) {
	out, ok := OutcomeFrom(ctx)
	if !ok {
		panic("dispatch: no route outcome attached to request")
	}

	var resp *httpx.Response
	switch out.Status {
	case router.StatusNotFound:
		resp = responseCarrier(ctx).SetStatus(http.StatusNotFound)

	case router.StatusMethodNotAllowed:
		resp = responseCarrier(ctx).
			SetStatus(http.StatusMethodNotAllowed).
			AddHeader("Allow", strings.Join(out.Allowed, ", "))

	case router.StatusFound:
		raw, err := c.invoker.Invoke(ctx, out.Handler, out.Params)
		if err != nil {
			var ie *InvokeError
			if errors.As(err, &ie) && errors.Is(ie.Err, ErrMethodMissing) {
				// Route configuration error: fixed 500, no normalization.
				c.log.Warn("handler method missing", zap.String("owner", ie.Owner))
				resp = responseCarrier(ctx).
					SetStatus(http.StatusInternalServerError).
					AddHeader("Content-Type", codec.ContentTypeText).
					SetBody([]byte(methodMissingBody))
				return c.finalize(resp), nil
			}
			return nil, err
		}
		resp, err = c.norm.Normalize(raw)
		if err != nil {
			return nil, err
		}

	default:
		panic(fmt.Sprintf("dispatch: unknown route outcome tag %d", out.Status))
	}

	return c.finalize(resp), nil
}

// FailureResponse converts an error propagated out of Dispatch into a
// response. Bind failures are the client's fault (400); everything else
// is a server-side 500. Both carry the Server header like every other
// path.
func (c *Core) FailureResponse(err error) *httpx.Response {
	status := http.StatusInternalServerError
	var be *BindError
	if errors.As(err, &be) {
		status = http.StatusBadRequest
	}
	resp := httpx.NewResponse().
		SetStatus(status).
		AddHeader("Content-Type", codec.ContentTypeText).
		SetBody([]byte(http.StatusText(status)))
	return c.finalize(resp)
}

// finalize appends the Server identification header, once, after body
// and content type are settled. Every response leaving the core passes
// through here exactly once.
func (c *Core) finalize(resp *httpx.Response) *httpx.Response {
	return resp.AddHeader("Server", c.server)
}

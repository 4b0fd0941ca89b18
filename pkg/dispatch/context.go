// pkg/dispatch/context.go
package dispatch

import (
	"context"

	"github.com/ericjank/hyperf/pkg/router"
	"github.com/ericjank/hyperf/pkg/transport/httpx"
)

// Store keys owned by this package.
const (
	outcomeKey  = "dispatch.outcome"
	responseKey = "dispatch.response"
)

// SeedRequest attaches a fresh request store carrying the route outcome
// and a pre-allocated response carrier. It is the single store write at
// request entry; everything after only reads.
func SeedRequest(ctx context.Context, out router.Outcome) context.Context {
	st := httpx.NewStore()
	st.Set(outcomeKey, out)
	st.Set(responseKey, httpx.NewResponse())
	return httpx.WithStore(ctx, st)
}

// OutcomeFrom reads the route outcome stashed at entry.
func OutcomeFrom(ctx context.Context) (router.Outcome, bool) {
	st := httpx.StoreFrom(ctx)
	if st == nil {
		return router.Outcome{}, false
	}
	v, ok := st.Get(outcomeKey)
	if !ok {
		return router.Outcome{}, false
	}
	out, ok := v.(router.Outcome)
	return out, ok
}

// responseCarrier fetches the pre-allocated response for canned replies.
func responseCarrier(ctx context.Context) *httpx.Response {
	if st := httpx.StoreFrom(ctx); st != nil {
		if v, ok := st.Get(responseKey); ok {
			if resp, ok := v.(*httpx.Response); ok {
				return resp
			}
		}
	}
	return httpx.NewResponse()
}

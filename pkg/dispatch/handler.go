// pkg/dispatch/handler.go
package dispatch

import (
	"net/http"

	"github.com/ericjank/hyperf/pkg/router"
	"go.uber.org/zap"
)

// NewHTTPHandler is the request entry: match, seed the request store,
// dispatch, emit. It doubles as the enclosing error middleware that
// turns propagated request-scoped failures into responses.
func NewHTTPHandler(m router.Matcher, core *Core, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out := m.Match(r.Method, r.URL.Path)
		ctx := SeedRequest(r.Context(), out)

		resp, err := core.Dispatch(ctx)
		if err != nil {
			log.Warn("dispatch failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			resp = core.FailureResponse(err)
		}
		resp.Write(w)
	})
}

package httpx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericjank/hyperf/pkg/transport/httpx"
)

func TestResponse_headers_append_not_overwrite(t *testing.T) {
	t.Parallel()

	r := httpx.NewResponse().
		AddHeader("Set-Cookie", "a=1").
		AddHeader("Set-Cookie", "b=2").
		AddHeader("Content-Type", "text/plain")

	assert.Equal(t, []string{"a=1", "b=2"}, r.HeaderValues("Set-Cookie"))

	v, ok := r.HeaderValue("set-cookie")
	require.True(t, ok)
	assert.Equal(t, "a=1", v, "first field wins on single lookup")

	_, ok = r.HeaderValue("X-Missing")
	assert.False(t, ok)

	hs := r.Headers()
	require.Len(t, hs, 3)
	assert.Equal(t, httpx.Header{Key: "Set-Cookie", Value: "a=1"}, hs[0])
	assert.Equal(t, httpx.Header{Key: "Set-Cookie", Value: "b=2"}, hs[1])
}

func TestResponse_write(t *testing.T) {
	t.Parallel()

	r := httpx.NewResponse().
		SetStatus(201).
		AddHeader("Content-Type", "text/plain").
		AddHeader("Set-Cookie", "a=1").
		AddHeader("Set-Cookie", "b=2").
		SetBody([]byte("created"))

	rec := httptest.NewRecorder()
	r.Write(rec)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "created", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"a=1", "b=2"}, rec.Header().Values("Set-Cookie"))
}

func TestResponse_defaults(t *testing.T) {
	t.Parallel()

	r := httpx.NewResponse()
	assert.Equal(t, 200, r.Status())
	assert.Empty(t, r.Body())
	assert.Empty(t, r.Headers())
}

func TestStore_per_request_isolation(t *testing.T) {
	t.Parallel()

	a := httpx.NewStore()
	b := httpx.NewStore()
	a.Set("k", "request-a")
	b.Set("k", "request-b")

	va, ok := a.Get("k")
	require.True(t, ok)
	vb, ok2 := b.Get("k")
	require.True(t, ok2)
	assert.Equal(t, "request-a", va)
	assert.Equal(t, "request-b", vb)

	_, ok = a.Get("other")
	assert.False(t, ok)
}

func TestStore_context_roundtrip(t *testing.T) {
	t.Parallel()

	st := httpx.NewStore()
	st.Set("k", 1)
	ctx := httpx.WithStore(t.Context(), st)

	got := httpx.StoreFrom(ctx)
	require.NotNil(t, got)
	v, ok := got.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.Nil(t, httpx.StoreFrom(t.Context()))
}

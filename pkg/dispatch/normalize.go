// pkg/dispatch/normalize.go
package dispatch

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/ericjank/hyperf/pkg/codec"
	"github.com/ericjank/hyperf/pkg/transport/httpx"
)

// Arrayable exposes a value's array/mapping form for JSON encoding.
type Arrayable interface {
	ToArray() any
}

// Normalizer coerces the heterogeneous shapes handlers return into a
// single response abstraction. Shape checks run in a fixed priority
// order; a value satisfying several shapes takes the first.
type Normalizer struct{}

// Normalize applies, in order: prebuilt response (returned untouched),
// plain string, sequence/mapping or Arrayable, json.Marshaler verbatim,
// then string coercion. Non-prebuilt responses default to status 200.
func (Normalizer) Normalize(raw any) (*httpx.Response, error) {
	if resp, ok := raw.(*httpx.Response); ok {
		if resp == nil {
			// Typed nil from a handler; treat as no result.
			return textResponse(""), nil
		}
		return resp, nil
	}
	if raw == nil {
		return textResponse(""), nil
	}
	if s, ok := raw.(string); ok {
		return textResponse(s), nil
	}

	if a, ok := raw.(Arrayable); ok {
		return jsonResponse(a.ToArray())
	}
	switch reflect.ValueOf(raw).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return jsonResponse(raw)
	}

	if m, ok := raw.(json.Marshaler); ok {
		// The value owns its JSON form; emit it verbatim.
		b, err := m.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("dispatch: marshal result: %w", err)
		}
		return httpx.NewResponse().
			AddHeader("Content-Type", codec.ContentTypeJSON).
			SetBody(b), nil
	}

	if s, ok := raw.(fmt.Stringer); ok {
		return textResponse(s.String()), nil
	}
	return textResponse(fmt.Sprint(raw)), nil
}

func textResponse(s string) *httpx.Response {
	return httpx.NewResponse().
		AddHeader("Content-Type", codec.ContentTypeText).
		SetBody([]byte(s))
}

func jsonResponse(v any) (*httpx.Response, error) {
	b, err := codec.JSON.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("dispatch: marshal result: %w", err)
	}
	return httpx.NewResponse().
		AddHeader("Content-Type", codec.ContentTypeJSON).
		SetBody(b), nil
}

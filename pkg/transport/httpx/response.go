// pkg/transport/httpx/response.go
package httpx

import (
	"net/http"
	"strings"
)

// Header is a single response header field. Responses keep fields as an
// ordered list so repeated names append rather than overwrite.
type Header struct {
	Key   string
	Value string
}

// Response is the normalized response every dispatch produces: status,
// ordered headers, body bytes. It is built fresh per request and written
// out once.
type Response struct {
	status  int
	headers []Header
	body    []byte
}

func NewResponse() *Response {
	return &Response{status: http.StatusOK}
}

func (r *Response) Status() int { return r.status }

func (r *Response) SetStatus(code int) *Response {
	r.status = code
	return r
}

// AddHeader appends a header field. Existing fields with the same name
// are kept.
func (r *Response) AddHeader(key, value string) *Response {
	r.headers = append(r.headers, Header{Key: key, Value: value})
	return r
}

// HeaderValue returns the first field with the given name.
func (r *Response) HeaderValue(key string) (string, bool) {
	for _, h := range r.headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value, true
		}
	}
	return "", false
}

// HeaderValues returns every field with the given name, in append order.
func (r *Response) HeaderValues(key string) []string {
	var out []string
	for _, h := range r.headers {
		if strings.EqualFold(h.Key, key) {
			out = append(out, h.Value)
		}
	}
	return out
}

// Headers returns a copy of the header list in append order.
func (r *Response) Headers() []Header {
	return append([]Header(nil), r.headers...)
}

func (r *Response) SetBody(b []byte) *Response {
	r.body = b
	return r
}

func (r *Response) Body() []byte { return r.body }

// Write emits the response to w. Headers go out in append order.
func (r *Response) Write(w http.ResponseWriter) {
	for _, h := range r.headers {
		w.Header().Add(h.Key, h.Value)
	}
	w.WriteHeader(r.status)
	if len(r.body) > 0 {
		_, _ = w.Write(r.body)
	}
}

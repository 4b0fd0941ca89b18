package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericjank/hyperf/pkg/manifest"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_controller_action_shorthand(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
[server]
name = "hyperf-test"
listen = ":8080"

[[route]]
path = "/users/{id}"
method = "get"
[route.handler]
action = "UserController@Show"
`)

	cfg, err := manifest.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hyperf-test", cfg.Server.Name)
	assert.Equal(t, ":8080", cfg.Server.Listen)

	require.Len(t, cfg.Routes, 1)
	rt := cfg.Routes[0]
	assert.Equal(t, "/users/{id}", rt.Path)
	assert.Equal(t, "GET", rt.Method, "method uppercased")
	assert.Equal(t, manifest.HandlerController, rt.Handler.Type)
	assert.Equal(t, "UserController", rt.Handler.Target)
	assert.Equal(t, "Show", rt.Handler.Method)
}

func TestLoad_inline_route_and_defaults(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
[[route]]
path = "ping"
[route.handler]
type = "inline"
name = "ping"
`)

	cfg, err := manifest.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hyperf", cfg.Server.Name, "server name defaults")
	rt := cfg.Routes[0]
	assert.Equal(t, "/ping", rt.Path, "leading slash added")
	assert.Equal(t, "GET", rt.Method, "method defaults to GET")
	assert.Equal(t, manifest.HandlerInline, rt.Handler.Type)
}

func TestLoad_inline_type_inferred_from_name(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
[[route]]
path = "/ping"
[route.handler]
name = "ping"
`)

	cfg, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, manifest.HandlerInline, cfg.Routes[0].Handler.Type)
}

func TestValidate_rejects_bad_manifests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"no routes", `[server]` + "\n" + `name = "x"`},
		{"unknown handler type", `
[[route]]
path = "/x"
[route.handler]
type = "proxy"
`},
		{"controller without method", `
[[route]]
path = "/x"
[route.handler]
type = "controller"
target = "XController"
`},
		{"inline without name", `
[[route]]
path = "/x"
[route.handler]
type = "inline"
`},
		{"unknown method", `
[[route]]
path = "/x"
method = "FETCH"
[route.handler]
name = "a"
`},
		{"malformed action", `
[[route]]
path = "/x"
[route.handler]
action = "NoSeparator"
`},
		{"duplicate route", `
[[route]]
path = "/x"
[route.handler]
name = "a"
[[route]]
path = "/x"
[route.handler]
name = "b"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeManifest(t, tt.body)
			_, err := manifest.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

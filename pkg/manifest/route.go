package manifest

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
)

var httpMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

type HandlerType string

const (
	// HandlerController routes to a named container type + method.
	HandlerController HandlerType = "controller"
	// HandlerInline routes to a registered inline func.
	HandlerInline HandlerType = "inline"
)

// Route describes a single dispatchable HTTP route.
type Route struct {
	Path    string `toml:"path"`
	Method  string `toml:"method"`
	Handler HSpec  `toml:"handler"`
}

type HSpec struct {
	Type   HandlerType `toml:"type"`
	Name   string      `toml:"name"`   // inline: registered func name
	Target string      `toml:"target"` // controller: container type name
	Method string      `toml:"method"` // controller: method name
	Action string      `toml:"action"` // controller shorthand, "Target@Method"
}

// normalize path/method and expand the action shorthand.
func (r *Route) normalize() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/" + r.Path
	}
	if r.Path != "/" {
		r.Path = path.Clean(r.Path)
	}
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = "GET"
	}

	if a := strings.TrimSpace(r.Handler.Action); a != "" {
		target, method, ok := strings.Cut(a, "@")
		if !ok {
			return fmt.Errorf("handler.action %q must be Target@Method", a)
		}
		r.Handler.Target = strings.TrimSpace(target)
		r.Handler.Method = strings.TrimSpace(method)
		if r.Handler.Type == "" {
			r.Handler.Type = HandlerController
		}
	}
	if r.Handler.Type == "" && r.Handler.Name != "" {
		r.Handler.Type = HandlerInline
	}
	return nil
}

// validate fields that are independent of global state.
func (r *Route) validate() error {
	if _, ok := httpMethods[r.Method]; !ok {
		return fmt.Errorf("unknown method %q", r.Method)
	}
	switch r.Handler.Type {
	case HandlerController:
		if strings.TrimSpace(r.Handler.Target) == "" || strings.TrimSpace(r.Handler.Method) == "" {
			return errors.New("handler.target and handler.method required for controller")
		}
	case HandlerInline:
		if strings.TrimSpace(r.Handler.Name) == "" {
			return errors.New("handler.name required for inline")
		}
	default:
		return fmt.Errorf("unknown handler type %q", r.Handler.Type)
	}
	return nil
}

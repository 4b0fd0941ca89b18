// pkg/router/registry.go
package router

import "sync"

var (
	inlineMu  sync.RWMutex
	inlineReg = map[string]InlineFunc{}
)

// RegisterInline makes an inline handler available under a name the
// manifest can reference.
func RegisterInline(name string, fn InlineFunc) {
	inlineMu.Lock()
	inlineReg[name] = fn
	inlineMu.Unlock()
}

// LookupInline retrieves a registered inline handler by name.
func LookupInline(name string) (InlineFunc, bool) {
	inlineMu.RLock()
	fn, ok := inlineReg[name]
	inlineMu.RUnlock()
	return fn, ok
}

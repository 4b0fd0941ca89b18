// pkg/dispatch/signature.go
package dispatch

import "sync"

// ParameterSpec describes one declared parameter of a handler method:
// its name, type name, whether absence is tolerable, and an optional
// default.
type ParameterSpec struct {
	Name       string
	Type       string
	Nullable   bool
	HasDefault bool
	Default    any
}

// SignatureProvider reports the declared parameters of a target method
// in signature order. The binder stays ignorant of where specs come
// from.
type SignatureProvider interface {
	ParametersOf(target, method string) []ParameterSpec
}

// MethodTable is the registry-backed SignatureProvider. Go reflection
// exposes neither parameter names nor defaults, so controllers register
// their bindable signatures at boot.
type MethodTable struct {
	mu   sync.RWMutex
	sigs map[string][]ParameterSpec
}

func NewMethodTable() *MethodTable {
	return &MethodTable{sigs: map[string][]ParameterSpec{}}
}

func (t *MethodTable) Register(target, method string, params ...ParameterSpec) {
	t.mu.Lock()
	t.sigs[target+"::"+method] = append([]ParameterSpec(nil), params...)
	t.mu.Unlock()
}

// ParametersOf returns a copy of the registered specs. An unregistered
// method binds as zero-parameter.
func (t *MethodTable) ParametersOf(target, method string) []ParameterSpec {
	t.mu.RLock()
	specs := t.sigs[target+"::"+method]
	t.mu.RUnlock()
	return append([]ParameterSpec(nil), specs...)
}

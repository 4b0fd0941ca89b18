// pkg/transport/httpx/store.go
package httpx

import (
	"context"
	"sync"
)

type storeCtxKey struct{}

// Store is a per-request key/value slot. Each request gets its own
// instance at entry; it is never shared across requests, so it carries
// request-scoped values without ambient globals.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

func (s *Store) Set(key string, v any) {
	s.mu.Lock()
	s.values[key] = v
	s.mu.Unlock()
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	return v, ok
}

// WithStore threads a store through the request context.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeCtxKey{}, s)
}

// StoreFrom returns the request store, or nil when none was attached.
func StoreFrom(ctx context.Context) *Store {
	s, _ := ctx.Value(storeCtxKey{}).(*Store)
	return s
}

// pkg/container/container.go
package container

import (
	"errors"
	"fmt"
	"sync"
)

// Constructor builds a service instance. It runs at most once per name;
// the result is cached as a singleton.
type Constructor func(c *Container) (any, error)

// ErrNotRegistered reports a Get for a name with no constructor.
var ErrNotRegistered = errors.New("container: not registered")

// Container resolves instances by type name and converts raw route
// parameters to typed values. Registration happens at boot; after that
// it is read-mostly and safe for concurrent use.
type Container struct {
	mu         sync.RWMutex
	ctors      map[string]Constructor
	instances  map[string]any
	converters map[string]Converter
}

func New() *Container {
	return &Container{
		ctors:      map[string]Constructor{},
		instances:  map[string]any{},
		converters: map[string]Converter{},
	}
}

// Register binds a constructor to a type name. Duplicate names error so
// two packages cannot silently fight over one binding.
func (c *Container) Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		return fmt.Errorf("container: name and constructor required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.ctors[name]; ok {
		return fmt.Errorf("container: %q already registered", name)
	}
	if _, ok := c.instances[name]; ok {
		return fmt.Errorf("container: %q already registered", name)
	}
	c.ctors[name] = ctor
	return nil
}

func (c *Container) MustRegister(name string, ctor Constructor) {
	if err := c.Register(name, ctor); err != nil {
		panic(err)
	}
}

// RegisterInstance binds an already-built value to a type name.
func (c *Container) RegisterInstance(name string, v any) error {
	if name == "" {
		return fmt.Errorf("container: name required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.ctors[name]; ok {
		return fmt.Errorf("container: %q already registered", name)
	}
	if _, ok := c.instances[name]; ok {
		return fmt.Errorf("container: %q already registered", name)
	}
	c.instances[name] = v
	return nil
}

// Has reports whether the container can produce an instance of name.
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.instances[name]; ok {
		return true
	}
	_, ok := c.ctors[name]
	return ok
}

// Get returns the instance bound to name, constructing it lazily on
// first use. Construction failure leaves nothing cached, so a later Get
// retries.
func (c *Container) Get(name string) (any, error) {
	c.mu.RLock()
	if v, ok := c.instances[name]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	ctor, ok := c.ctors[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	// Construct outside the lock so constructors can resolve their own
	// dependencies through the container.
	v, err := ctor(c)
	if err != nil {
		return nil, fmt.Errorf("container: construct %q: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.instances[name]; ok {
		// Lost a construction race; keep the first instance.
		return prev, nil
	}
	c.instances[name] = v
	return v, nil
}

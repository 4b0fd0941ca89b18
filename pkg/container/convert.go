// pkg/container/convert.go
package container

import (
	"errors"
	"fmt"
	"strconv"
)

// Converter turns a raw route parameter into a typed value.
type Converter func(raw string) (any, error)

// ErrNoConverter reports a Convert for a type name with no conversion
// path, builtin or registered.
var ErrNoConverter = errors.New("container: no converter")

// RegisterConverter binds a conversion for a type name, e.g. a value
// object built from its string form. A registered converter takes
// precedence over the builtin primitives.
func (c *Container) RegisterConverter(typeName string, fn Converter) error {
	if typeName == "" || fn == nil {
		return fmt.Errorf("container: type name and converter required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.converters[typeName]; ok {
		return fmt.Errorf("container: converter for %q already registered", typeName)
	}
	c.converters[typeName] = fn
	return nil
}

// Convert denormalizes a raw string into the named type. Primitive
// names are handled builtin; anything else needs a registered converter.
func (c *Container) Convert(raw, typeName string) (any, error) {
	c.mu.RLock()
	fn, ok := c.converters[typeName]
	c.mu.RUnlock()
	if ok {
		v, err := fn(raw)
		if err != nil {
			return nil, fmt.Errorf("container: convert %q to %s: %w", raw, typeName, err)
		}
		return v, nil
	}
	v, err := convertPrimitive(raw, typeName)
	if err != nil {
		return nil, fmt.Errorf("container: convert %q to %s: %w", raw, typeName, err)
	}
	return v, nil
}

func convertPrimitive(raw, typeName string) (any, error) {
	switch typeName {
	case "string":
		return raw, nil
	case "int":
		return strconv.Atoi(raw)
	case "int8":
		n, err := strconv.ParseInt(raw, 10, 8)
		return int8(n), err
	case "int16":
		n, err := strconv.ParseInt(raw, 10, 16)
		return int16(n), err
	case "int32":
		n, err := strconv.ParseInt(raw, 10, 32)
		return int32(n), err
	case "int64":
		return strconv.ParseInt(raw, 10, 64)
	case "uint":
		n, err := strconv.ParseUint(raw, 10, 64)
		return uint(n), err
	case "uint8":
		n, err := strconv.ParseUint(raw, 10, 8)
		return uint8(n), err
	case "uint16":
		n, err := strconv.ParseUint(raw, 10, 16)
		return uint16(n), err
	case "uint32":
		n, err := strconv.ParseUint(raw, 10, 32)
		return uint32(n), err
	case "uint64":
		return strconv.ParseUint(raw, 10, 64)
	case "float32":
		f, err := strconv.ParseFloat(raw, 32)
		return float32(f), err
	case "float64":
		return strconv.ParseFloat(raw, 64)
	case "bool":
		return strconv.ParseBool(raw)
	default:
		return nil, ErrNoConverter
	}
}

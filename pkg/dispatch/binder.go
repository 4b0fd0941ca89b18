// pkg/dispatch/binder.go
package dispatch

import (
	"fmt"

	"github.com/ericjank/hyperf/pkg/container"
	"github.com/ericjank/hyperf/pkg/router"
)

// Binder resolves a handler method's declared parameters into an
// ordered argument list. It reads route params and the container and
// mutates neither.
type Binder struct {
	sigs SignatureProvider
	c    *container.Container
}

func NewBinder(sigs SignatureProvider, c *container.Container) *Binder {
	return &Binder{sigs: sigs, c: c}
}

// Bind walks the declared parameters in signature order. A positional
// value wins over a name match; callers may supply ambiguous param maps
// and depend on that tie-break. Absence means no value at all, not "".
func (b *Binder) Bind(target, method string, params router.Params) ([]any, error) {
	specs := b.sigs.ParametersOf(target, method)
	owner := target + "::" + method

	args := make([]any, 0, len(specs))
	for i, spec := range specs {
		raw, ok := params.ByIndex(i)
		if !ok {
			raw, ok = params.ByName(spec.Name)
		}
		if !ok {
			v, err := b.absent(spec, owner)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			continue
		}
		v, err := b.c.Convert(raw, spec.Type)
		if err != nil {
			return nil, &BindError{
				Param: spec.Name,
				Owner: owner,
				Err:   fmt.Errorf("%w: %v", ErrConversion, err),
			}
		}
		args = append(args, v)
	}
	return args, nil
}

// absent resolves a parameter with no supplied value: declared default,
// then nullable zero, then a container instance of the declared type.
func (b *Binder) absent(spec ParameterSpec, owner string) (any, error) {
	switch {
	case spec.HasDefault:
		return spec.Default, nil
	case spec.Nullable:
		return nil, nil
	case b.c.Has(spec.Type):
		v, err := b.c.Get(spec.Type)
		if err != nil {
			return nil, &InvokeError{
				Owner: owner,
				Err:   fmt.Errorf("%w: %v", ErrConstruction, err),
			}
		}
		return v, nil
	default:
		return nil, &BindError{Param: spec.Name, Owner: owner, Err: ErrMissingParameter}
	}
}

// pkg/dispatch/invoker.go
package dispatch

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ericjank/hyperf/pkg/container"
	"github.com/ericjank/hyperf/pkg/router"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Invoker resolves a HandlerRef to a callable and calls it. A bound ref
// may lazily construct its target inside the container; a target whose
// method does not exist is a request-level failure, never a crash.
type Invoker struct {
	c      *container.Container
	binder *Binder
}

func NewInvoker(c *container.Container, b *Binder) *Invoker {
	return &Invoker{c: c, binder: b}
}

func (inv *Invoker) Invoke(ctx context.Context, ref router.HandlerRef, params router.Params) (any, error) {
	if ref.IsInline() {
		// Inline handlers get no argument binding; they close over
		// whatever they need.
		return ref.Fn(ctx)
	}

	owner := ref.Owner()
	inst, err := inv.c.Get(ref.Target)
	if err != nil {
		return nil, &InvokeError{Owner: owner, Err: fmt.Errorf("%w: %v", ErrConstruction, err)}
	}
	m := reflect.ValueOf(inst).MethodByName(ref.Method)
	if !m.IsValid() {
		return nil, &InvokeError{Owner: owner, Err: ErrMethodMissing}
	}
	args, err := inv.binder.Bind(ref.Target, ref.Method, params)
	if err != nil {
		return nil, err
	}
	return callMethod(ctx, m, args, owner)
}

// callMethod materializes bound arguments as reflect values and calls.
// An optional leading context.Context parameter receives the request
// context and is not part of the bound list.
func callMethod(ctx context.Context, m reflect.Value, args []any, owner string) (any, error) {
	mt := m.Type()
	in := make([]reflect.Value, 0, mt.NumIn())

	next := 0
	if mt.NumIn() > 0 && mt.In(0) == ctxType {
		in = append(in, reflect.ValueOf(ctx))
		next = 1
	}
	if mt.NumIn()-next != len(args) {
		return nil, &InvokeError{
			Owner: owner,
			Err:   fmt.Errorf("argument count mismatch: method takes %d, bound %d", mt.NumIn()-next, len(args)),
		}
	}
	for i, arg := range args {
		pt := mt.In(next + i)
		if arg == nil {
			// Nullable parameter bound absent.
			in = append(in, reflect.Zero(pt))
			continue
		}
		v := reflect.ValueOf(arg)
		switch {
		case v.Type().AssignableTo(pt):
		case v.Type().ConvertibleTo(pt):
			v = v.Convert(pt)
		default:
			return nil, &InvokeError{
				Owner: owner,
				Err:   fmt.Errorf("argument %d: %s not assignable to %s", i, v.Type(), pt),
			}
		}
		in = append(in, v)
	}

	out := m.Call(in)
	return splitResult(out)
}

// splitResult separates a trailing error return from the raw result.
func splitResult(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if last.Type().Implements(errType) {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

package access

import (
	"fmt"
	"reflect"
)

// Callable is the preferred calling convention for dynamic subjects: a
// variadic function over loosely typed values.
type Callable func(args ...any) (any, error)

// KwCallable is implemented by values that accept keyword arguments in
// addition to positional ones.
type KwCallable interface {
	CallKw(args []any, kwargs map[string]any) (any, error)
}

// Call invokes fn with the given arguments. A KwCallable receives the
// keyword arguments verbatim; a Callable or a plain Go function requires
// kwargs to be empty. Plain functions are invoked through reflection with
// per-argument conversion, and a trailing error result is unwrapped.
func Call(fn any, args []any, kwargs map[string]any) (any, error) {
	switch f := fn.(type) {
	case KwCallable:
		return f.CallKw(args, kwargs)
	case Callable:
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%w: %T does not accept keyword arguments", ErrNotCallable, fn)
		}
		return f(args...)
	case func(args ...any) (any, error):
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%w: %T does not accept keyword arguments", ErrNotCallable, fn)
		}
		return f(args...)
	}

	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%w: %T does not accept keyword arguments", ErrNotCallable, fn)
	}
	return reflectCall(rv, args)
}

func reflectCall(fn reflect.Value, args []any) (any, error) {
	ft := fn.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: %s needs at least %d arguments, got %d",
				ErrNotCallable, ft, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: %s needs %d arguments, got %d",
			ErrNotCallable, ft, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(ft.NumIn() - 1).Elem()
		}
		v, err := conform(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %v", ErrNotCallable, i, err)
		}
		in[i] = v
	}

	out := fn.Call(in)
	if n := len(out); n > 0 && ft.Out(n-1) == errType {
		errV := out[n-1]
		out = out[:n-1]
		if !errV.IsNil() {
			return nil, errV.Interface().(error)
		}
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

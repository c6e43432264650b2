package sig

import (
	"fmt"
	"reflect"

	"sigchain/access"
)

// Call invokes the subject as a callable with the bound positional args and
// the options as bound keyword args. Each call site is semantically
// distinct, so Call never merges.
type Call struct {
	base
}

// NewCall binds positional arguments for invoking the subject.
func NewCall(args ...any) (*Call, error) {
	return NewCallOpts(nil, args...)
}

// NewCallOpts is NewCall with bound keyword arguments.
func NewCallOpts(opts Options, args ...any) (*Call, error) {
	s, err := Construct(KindCall, args, opts)
	if err != nil {
		return nil, err
	}
	return s.(*Call), nil
}

func newCall(args []any, opts Options) (*Call, error) {
	s := &Call{base: base{kind: KindCall, args: args, opts: opts}}
	s.finish(s)
	return s, nil
}

func (s *Call) Get(subject any) (any, error) {
	return s.GetWith(subject, nil, nil)
}

// GetWith invokes the subject with extra call-time arguments placed before
// the bound ones, and call-time keyword args overriding the bound ones.
func (s *Call) GetWith(subject any, extra []any, kwargs map[string]any) (any, error) {
	args := make([]any, 0, len(extra)+len(s.args))
	args = append(args, extra...)
	args = append(args, s.args...)
	v, err := access.Call(subject, args, mergeKwargs(s.opts, kwargs))
	if err != nil {
		return nil, accessErr(s, "()", err)
	}
	return v, nil
}

// Func wraps a callable with bound arguments: get invokes the wrapped
// function with the subject prepended to the bound args, independent of
// what the subject itself supports. Func never merges.
type Func struct {
	base
}

// NewFunc wraps fn with bound positional arguments.
func NewFunc(fn any, bound ...any) (*Func, error) {
	return NewFuncOpts(nil, fn, bound...)
}

// NewFuncOpts is NewFunc with bound keyword arguments.
func NewFuncOpts(opts Options, fn any, bound ...any) (*Func, error) {
	args := make([]any, 0, len(bound)+1)
	args = append(args, fn)
	args = append(args, bound...)
	s, err := Construct(KindFunc, args, opts)
	if err != nil {
		return nil, err
	}
	return s.(*Func), nil
}

func newFunc(args []any, opts Options) (*Func, error) {
	if !callable(args[0]) {
		return nil, fmt.Errorf("sig: %s needs a callable first argument, got %T", KindFunc, args[0])
	}
	s := &Func{base: base{kind: KindFunc, args: args, opts: opts}}
	s.finish(s)
	return s, nil
}

// Fn returns the wrapped callable.
func (s *Func) Fn() any { return s.args[0] }

func (s *Func) Get(subject any) (any, error) {
	return s.GetWith([]any{subject}, nil)
}

// GetWith invokes the wrapped callable with the call-time arguments placed
// before the bound ones.
func (s *Func) GetWith(extra []any, kwargs map[string]any) (any, error) {
	args := make([]any, 0, len(extra)+len(s.args)-1)
	args = append(args, extra...)
	args = append(args, s.args[1:]...)
	v, err := access.Call(s.args[0], args, mergeKwargs(s.opts, kwargs))
	if err != nil {
		return nil, accessErr(s, "()", err)
	}
	return v, nil
}

func callable(v any) bool {
	switch v.(type) {
	case access.Callable, access.KwCallable, func(args ...any) (any, error):
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}

// mergeKwargs lays call-time keyword args over the bound options.
func mergeKwargs(bound Options, call map[string]any) map[string]any {
	if len(bound) == 0 && len(call) == 0 {
		return nil
	}
	out := make(map[string]any, len(bound)+len(call))
	for k, v := range bound {
		out[k] = v
	}
	for k, v := range call {
		out[k] = v
	}
	return out
}

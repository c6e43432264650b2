// Package ops hosts the operator registry used by operation signatures:
// a thread-safe name -> implementation map pre-seeded with comparison,
// arithmetic, bitwise and containment operators, and extensible with
// user-registered names.
package ops

import (
	"errors"
	"fmt"
	"sync"

	"sigchain/utils"
)

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrBadOperands     = errors.New("bad operands")
)

// Func is an operator implementation over loosely typed operand values.
type Func func(operands ...any) (any, error)

// Registry maps operator names to implementations. The zero value is not
// usable; create one with NewRegistry, or use the shared Default registry.
// All methods are safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Func)}
}

// Register binds name to fn, replacing any previous binding.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("%w: empty operator name", ErrBadOperands)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil operator func for %q", ErrBadOperands, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fns[name] = fn
	return nil
}

// Lookup returns the implementation bound to name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[name]
	return fn, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered operator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return utils.SortedKeys(r.fns)
}

// Apply looks name up and invokes it with the operands.
func (r *Registry) Apply(name string, operands ...any) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	return fn(operands...)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, seeded with the built-in
// operators on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for name, fn := range builtins() {
			defaultReg.fns[name] = fn
		}
	})
	return defaultReg
}

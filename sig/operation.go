package sig

import (
	"fmt"

	"sigchain/ops"
)

// Operation applies a named operator to the results of evaluating its
// operand signatures against the same subject. The operator name is
// validated at construction; unknown names fail immediately. The registry
// an operation is bound to is not part of its identity.
type Operation struct {
	base
	reg *ops.Registry
}

// NewOperation builds an operation over the Default registry. The operands
// are evaluated in order and their results become the operator's arguments.
func NewOperation(name string, operands ...Signature) (*Operation, error) {
	return NewOperationIn(ops.Default(), name, operands...)
}

// NewOperationIn is NewOperation bound to an explicit registry.
func NewOperationIn(reg *ops.Registry, name string, operands ...Signature) (*Operation, error) {
	args := make([]any, 0, len(operands)+1)
	args = append(args, name)
	for _, o := range operands {
		args = append(args, o)
	}
	p := PolicyFor(KindOperation)
	if len(args) < p.MinArgs {
		return nil, &ArityError{Kind: KindOperation, Min: p.MinArgs, Max: p.MaxArgs, Got: len(args)}
	}
	return newOperation(args, nil, reg)
}

func newOperation(args []any, opts Options, reg *ops.Registry) (*Operation, error) {
	if reg == nil {
		reg = ops.Default()
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("sig: %s needs an operator name first, got %T", KindOperation, args[0])
	}
	if !reg.Has(name) {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ops.ErrUnknownOperator, name, reg.Names())
	}
	for _, a := range args[1:] {
		if _, ok := a.(Signature); !ok {
			return nil, fmt.Errorf("sig: %s operands must be signatures, got %T", KindOperation, a)
		}
	}
	s := &Operation{base: base{kind: KindOperation, args: args, opts: opts}, reg: reg}
	s.finish(s)
	return s, nil
}

// Extend keeps the registry binding, unlike the generic path.
func (s *Operation) Extend(args []any, opts Options) (Signature, error) {
	if len(opts) > 0 {
		return nil, &UnexpectedOptionError{Kind: KindOperation, Unexpected: opts.Keys()}
	}
	merged := make([]any, 0, len(s.args)+len(args))
	merged = append(merged, s.args...)
	merged = append(merged, args...)
	return newOperation(merged, s.opts.Clone(), s.reg)
}

// Operator returns the operator name.
func (s *Operation) Operator() string { return s.args[0].(string) }

// Operands returns the operand signatures.
func (s *Operation) Operands() []Signature {
	out := make([]Signature, len(s.args)-1)
	for i, a := range s.args[1:] {
		out[i] = a.(Signature)
	}
	return out
}

func (s *Operation) Get(subject any) (any, error) {
	vals := make([]any, len(s.args)-1)
	for i, a := range s.args[1:] {
		v, err := a.(Signature).Get(subject)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	v, err := s.reg.Apply(s.args[0].(string), vals...)
	if err != nil {
		return nil, accessErr(s, s.args[0], err)
	}
	return v, nil
}

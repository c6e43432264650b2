package sig

import "sigchain/ops"

// Builder assembles a signature step by step. Every method returns a new
// Builder, so partially built expressions can be branched and reused.
// Construction failures are carried forward and surfaced by Build.
type Builder struct {
	sig Signature
	reg *ops.Registry
	err error
}

// Var opens a builder over the empty chain, so the first recorded step
// stands alone and the whole expression stays as short as it can be.
func Var() Builder {
	return VarIn(ops.Default())
}

// VarIn is Var with operator expressions bound to reg instead of the
// default registry.
func VarIn(reg *ops.Registry) Builder {
	c, err := NewChain()
	return Builder{sig: c, reg: reg, err: err}
}

// From opens a builder continuing an existing signature.
func From(s Signature) Builder {
	return Builder{sig: s, reg: ops.Default()}
}

// Signature returns the accumulated signature without finalizing; it is
// nil while the builder carries an error.
func (b Builder) Signature() Signature {
	if b.err != nil {
		return nil
	}
	return b.sig
}

// Build finalizes the expression.
func (b Builder) Build() (Signature, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.sig, nil
}

// MustBuild is Build for statically known expressions; it panics on error.
func (b Builder) MustBuild() Signature {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b Builder) compose(next Signature, err error) Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		return Builder{reg: b.reg, err: err}
	}
	s, err := Compose(b.sig, next)
	if err != nil {
		return Builder{reg: b.reg, err: err}
	}
	return Builder{sig: s, reg: b.reg}
}

// Attr appends an attribute access; dotted names expand to one step per
// path element.
func (b Builder) Attr(names ...string) Builder {
	s, err := NewAttr(names...)
	return b.compose(s, err)
}

// AttrOpts is Attr carrying options, e.g. a lookup default.
func (b Builder) AttrOpts(opts Options, names ...string) Builder {
	s, err := NewAttrOpts(opts, names...)
	return b.compose(s, err)
}

// Item appends one item lookup per key.
func (b Builder) Item(keys ...any) Builder {
	s, err := NewItem(keys...)
	return b.compose(s, err)
}

// ItemOpts is Item carrying options, e.g. a lookup default.
func (b Builder) ItemOpts(opts Options, keys ...any) Builder {
	s, err := NewItemOpts(opts, keys...)
	return b.compose(s, err)
}

// Slice appends one slicing step per spec.
func (b Builder) Slice(specs ...any) Builder {
	s, err := NewSlice(specs...)
	return b.compose(s, err)
}

// Call appends an invocation of the navigated value with bound args.
func (b Builder) Call(args ...any) Builder {
	s, err := NewCall(args...)
	return b.compose(s, err)
}

// CallOpts is Call with bound keyword options.
func (b Builder) CallOpts(opts Options, args ...any) Builder {
	s, err := NewCallOpts(opts, args...)
	return b.compose(s, err)
}

// Pipe appends a function applied to the navigated value, with extra
// bound args after the subject.
func (b Builder) Pipe(fn any, bound ...any) Builder {
	s, err := NewFunc(fn, bound...)
	return b.compose(s, err)
}

// Op wraps the whole accumulated expression as the first operand of a
// registry operator, with the remaining operands coerced: builders and
// signatures stand for themselves, anything else becomes a constant.
func (b Builder) Op(name string, operands ...any) Builder {
	if b.err != nil {
		return b
	}
	sigs := make([]Signature, 0, len(operands)+1)
	sigs = append(sigs, b.sig)
	for _, o := range operands {
		s, err := ensureSignature(o)
		if err != nil {
			return Builder{reg: b.reg, err: err}
		}
		sigs = append(sigs, s)
	}
	s, err := NewOperationIn(b.reg, name, sigs...)
	if err != nil {
		return Builder{reg: b.reg, err: err}
	}
	return Builder{sig: s, reg: b.reg}
}

// Comparison sugar.

func (b Builder) Eq(other any) Builder { return b.Op("eq", other) }
func (b Builder) Ne(other any) Builder { return b.Op("ne", other) }
func (b Builder) Lt(other any) Builder { return b.Op("lt", other) }
func (b Builder) Le(other any) Builder { return b.Op("le", other) }
func (b Builder) Gt(other any) Builder { return b.Op("gt", other) }
func (b Builder) Ge(other any) Builder { return b.Op("ge", other) }

// Arithmetic sugar.

func (b Builder) Add(other any) Builder { return b.Op("add", other) }
func (b Builder) Sub(other any) Builder { return b.Op("sub", other) }
func (b Builder) Mul(other any) Builder { return b.Op("mul", other) }
func (b Builder) Div(other any) Builder { return b.Op("div", other) }
func (b Builder) Mod(other any) Builder { return b.Op("mod", other) }
func (b Builder) Neg() Builder          { return b.Op("neg") }
func (b Builder) Abs() Builder          { return b.Op("abs") }
func (b Builder) Not() Builder          { return b.Op("not") }

// Contains tests membership of other in the navigated value.
func (b Builder) Contains(other any) Builder { return b.Op("contains", other) }

func ensureSignature(v any) (Signature, error) {
	switch x := v.(type) {
	case Builder:
		return x.Build()
	case *Builder:
		return x.Build()
	case Signature:
		return x, nil
	default:
		return NewRef(v)
	}
}


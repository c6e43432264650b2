package sig

// Ref wraps a single constant: get returns it regardless of the subject.
// It is the no-op terminator operand nodes use for literal values, and it
// never merges (fusing two constants would change the result).
type Ref struct {
	base
}

// NewRef wraps value in a Ref node.
func NewRef(value any) (*Ref, error) {
	s, err := Construct(KindRef, []any{value}, nil)
	if err != nil {
		return nil, err
	}
	return s.(*Ref), nil
}

func newRef(args []any, opts Options) (*Ref, error) {
	s := &Ref{base: base{kind: KindRef, args: args, opts: opts}}
	s.finish(s)
	return s, nil
}

// Value returns the wrapped constant.
func (s *Ref) Value() any { return s.args[0] }

func (s *Ref) Get(subject any) (any, error) { return s.args[0], nil }

// Return passes the subject through unchanged: the identity element for
// composition.
type Return struct {
	base
}

// NewReturn creates the identity signature.
func NewReturn() *Return {
	s, err := Construct(KindReturn, nil, nil)
	if err != nil {
		// The Return policy admits the empty construction.
		panic(err)
	}
	return s.(*Return)
}

func newReturn(args []any, opts Options) (*Return, error) {
	s := &Return{base: base{kind: KindReturn, args: args, opts: opts}}
	s.finish(s)
	return s, nil
}

func (s *Return) Get(subject any) (any, error) { return subject, nil }

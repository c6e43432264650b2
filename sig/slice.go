package sig

import (
	"fmt"

	"sigchain/access"
)

// Slice traverses one or more sub-sequence selections. A selection may be
// given as an access.SliceSpec, a plain int index, or a 2/3-element bound
// list (with nil for an open bound); all forms normalize identically at
// construction, so equal selections are equal signatures.
type Slice struct {
	base
}

// NewSlice builds a slicing traversal over the given selections.
func NewSlice(specs ...any) (*Slice, error) {
	s, err := Construct(KindSlice, specs, nil)
	if err != nil {
		return nil, err
	}
	return s.(*Slice), nil
}

func newSlice(args []any, opts Options) (*Slice, error) {
	norm := make([]any, len(args))
	for i, a := range args {
		spec, err := normalizeSpec(a)
		if err != nil {
			return nil, err
		}
		norm[i] = spec
	}
	s := &Slice{base: base{kind: KindSlice, args: norm, opts: opts}}
	s.finish(s)
	return s, nil
}

func normalizeSpec(v any) (access.SliceSpec, error) {
	switch t := v.(type) {
	case access.SliceSpec:
		return t, nil
	case *access.SliceSpec:
		if t == nil {
			return access.SliceSpec{}, fmt.Errorf("sig: %s got a nil spec", KindSlice)
		}
		return *t, nil
	case int:
		return access.At(t), nil
	case []int:
		bounds := make([]any, len(t))
		for i, n := range t {
			bounds[i] = n
		}
		return specFromBounds(bounds)
	case []any:
		return specFromBounds(t)
	}
	return access.SliceSpec{}, fmt.Errorf("sig: %s cannot use %T as a selection", KindSlice, v)
}

// specFromBounds reads a (start, stop, step) bound list; nil entries leave
// the bound open.
func specFromBounds(bounds []any) (access.SliceSpec, error) {
	if len(bounds) == 0 || len(bounds) > 3 {
		return access.SliceSpec{}, fmt.Errorf(
			"sig: %s needs 1 to 3 bounds, got %d", KindSlice, len(bounds))
	}
	var spec access.SliceSpec
	fields := []**int{&spec.Start, &spec.Stop, &spec.Step}
	for i, b := range bounds {
		if b == nil {
			continue
		}
		n, ok := b.(int)
		if !ok {
			return access.SliceSpec{}, fmt.Errorf(
				"sig: %s bounds must be ints or nil, got %T", KindSlice, b)
		}
		*fields[i] = access.IntPtr(n)
	}
	return spec, nil
}

// Specs returns the normalized selections.
func (s *Slice) Specs() []access.SliceSpec {
	specs := make([]access.SliceSpec, len(s.args))
	for i, a := range s.args {
		specs[i] = a.(access.SliceSpec)
	}
	return specs
}

func (s *Slice) Get(subject any) (any, error) {
	obj := subject
	for _, a := range s.args {
		v, err := access.GetSlice(obj, a.(access.SliceSpec))
		if err != nil {
			if d, ok := s.defaultValue(); ok {
				return d, nil
			}
			return nil, accessErr(s, a, err)
		}
		obj = v
	}
	return obj, nil
}

// Set replaces the selected span. Supported for exactly one selection;
// chained selections produce intermediate copies that mutation could not
// observe.
func (s *Slice) Set(subject, value any) error {
	if !s.CanSet() {
		return &MutationError{Op: "set", Sig: s}
	}
	if err := access.SetSlice(subject, s.args[0].(access.SliceSpec), value); err != nil {
		return accessErr(s, s.args[0], err)
	}
	return nil
}

// Delete removes the selected span; same single-selection constraint as Set.
func (s *Slice) Delete(subject any) error {
	if !s.CanDelete() {
		return &MutationError{Op: "delete", Sig: s}
	}
	if err := access.DelSlice(subject, s.args[0].(access.SliceSpec)); err != nil {
		return accessErr(s, s.args[0], err)
	}
	return nil
}

func (s *Slice) CanSet() bool    { return len(s.args) == 1 }
func (s *Slice) CanDelete() bool { return len(s.args) == 1 }

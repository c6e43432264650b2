package sig

import (
	"fmt"
	"strings"

	"sigchain/access"
)

// Attr traverses one or more attribute names in sequence. Dotted names are
// split at construction, so Attr("a.b.c"), Attr("a", "b", "c") and
// Attr("a", "b.c") are all the same signature.
type Attr struct {
	base
}

// NewAttr builds an attribute traversal over the given names.
func NewAttr(names ...string) (*Attr, error) {
	return NewAttrOpts(nil, names...)
}

// NewAttrOpts is NewAttr with options; OptDefault turns a failed get into
// the given fallback value.
func NewAttrOpts(opts Options, names ...string) (*Attr, error) {
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	s, err := Construct(KindAttr, args, opts)
	if err != nil {
		return nil, err
	}
	return s.(*Attr), nil
}

func newAttr(args []any, opts Options) (*Attr, error) {
	split := make([]any, 0, len(args))
	for _, a := range args {
		name, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("sig: %s needs string names, got %T", KindAttr, a)
		}
		if name == "" {
			return nil, fmt.Errorf("sig: %s got an empty name", KindAttr)
		}
		for _, part := range strings.Split(name, ".") {
			if part == "" {
				return nil, fmt.Errorf("sig: %s got malformed path %q", KindAttr, name)
			}
			split = append(split, part)
		}
	}
	s := &Attr{base: base{kind: KindAttr, args: split, opts: opts}}
	s.finish(s)
	return s, nil
}

// Names returns the traversed attribute names after dot splitting.
func (s *Attr) Names() []string {
	names := make([]string, len(s.args))
	for i, a := range s.args {
		names[i] = a.(string)
	}
	return names
}

func (s *Attr) Get(subject any) (any, error) {
	obj := subject
	for _, a := range s.args {
		v, err := access.GetAttr(obj, a.(string))
		if err != nil {
			if d, ok := s.defaultValue(); ok {
				return d, nil
			}
			return nil, attrErr(s, a, err)
		}
		obj = v
	}
	return obj, nil
}

func (s *Attr) Set(subject, value any) error {
	obj, last, err := s.navigate(subject)
	if err != nil {
		return err
	}
	if err := access.SetAttr(obj, last, value); err != nil {
		return attrErr(s, last, err)
	}
	return nil
}

func (s *Attr) Delete(subject any) error {
	obj, last, err := s.navigate(subject)
	if err != nil {
		return err
	}
	if err := access.DelAttr(obj, last); err != nil {
		return attrErr(s, last, err)
	}
	return nil
}

// navigate walks every name but the last and returns the penultimate
// object together with the final name. Mutations never use the default
// fallback.
func (s *Attr) navigate(subject any) (obj any, last string, err error) {
	obj = subject
	for _, a := range s.args[:len(s.args)-1] {
		v, err := access.GetAttr(obj, a.(string))
		if err != nil {
			return nil, "", attrErr(s, a, err)
		}
		obj = v
	}
	return obj, s.args[len(s.args)-1].(string), nil
}

func (s *Attr) CanSet() bool    { return true }
func (s *Attr) CanDelete() bool { return true }

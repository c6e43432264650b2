package sig

import (
	"sigchain/access"
)

// Item traverses one or more subscript keys in sequence: map keys or
// sequence indices, with negative indices counting from the end.
type Item struct {
	base
}

// NewItem builds a subscript traversal over the given keys.
func NewItem(keys ...any) (*Item, error) {
	return NewItemOpts(nil, keys...)
}

// NewItemOpts is NewItem with options; OptDefault turns a failed get into
// the given fallback value.
func NewItemOpts(opts Options, keys ...any) (*Item, error) {
	s, err := Construct(KindItem, keys, opts)
	if err != nil {
		return nil, err
	}
	return s.(*Item), nil
}

func newItem(args []any, opts Options) (*Item, error) {
	s := &Item{base: base{kind: KindItem, args: args, opts: opts}}
	s.finish(s)
	return s, nil
}

// Keys returns the traversed subscript keys.
func (s *Item) Keys() []any { return s.Args() }

func (s *Item) Get(subject any) (any, error) {
	obj := subject
	for _, key := range s.args {
		v, err := access.GetItem(obj, key)
		if err != nil {
			if d, ok := s.defaultValue(); ok {
				return d, nil
			}
			return nil, accessErr(s, key, err)
		}
		obj = v
	}
	return obj, nil
}

func (s *Item) Set(subject, value any) error {
	obj, last, err := s.navigate(subject)
	if err != nil {
		return err
	}
	if err := access.SetItem(obj, last, value); err != nil {
		return accessErr(s, last, err)
	}
	return nil
}

func (s *Item) Delete(subject any) error {
	obj, last, err := s.navigate(subject)
	if err != nil {
		return err
	}
	if err := access.DelItem(obj, last); err != nil {
		return accessErr(s, last, err)
	}
	return nil
}

func (s *Item) navigate(subject any) (obj any, last any, err error) {
	obj = subject
	for _, key := range s.args[:len(s.args)-1] {
		v, err := access.GetItem(obj, key)
		if err != nil {
			return nil, nil, accessErr(s, key, err)
		}
		obj = v
	}
	return obj, s.args[len(s.args)-1], nil
}

func (s *Item) CanSet() bool    { return true }
func (s *Item) CanDelete() bool { return true }

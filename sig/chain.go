package sig

import (
	"fmt"
	"sync"
)

// Chain is an ordered sequence of signatures compiled into a single
// pipeline. Construction flattens nested chains with equal options and
// merge-reduces adjacent links, so no two adjacent links are ever
// mergeable. The compiled get/set/delete pipelines are derived lazily and
// memoized exactly once per instance.
type Chain struct {
	base
	links []Signature

	getOnce sync.Once
	getFn   func(any) (any, error)

	setOnce sync.Once
	setFn   func(any, any) error
	setErr  error

	delOnce sync.Once
	delFn   func(any) error
	delErr  error
}

// NewChain composes the links into a chain.
func NewChain(links ...Signature) (*Chain, error) {
	args := make([]any, len(links))
	for i, l := range links {
		args[i] = l
	}
	s, err := Construct(KindChain, args, nil)
	if err != nil {
		return nil, err
	}
	return s.(*Chain), nil
}

func newChain(args []any, opts Options) (*Chain, error) {
	inputs := make([]Signature, len(args))
	for i, a := range args {
		l, ok := a.(Signature)
		if !ok || l == nil {
			return nil, fmt.Errorf("sig: %s links must be signatures, got %T", KindChain, a)
		}
		inputs[i] = l
	}

	links := flattenLinks(inputs, opts)
	flat := make([]any, len(links))
	for i, l := range links {
		flat[i] = l
	}
	s := &Chain{base: base{kind: KindChain, args: flat, opts: opts}, links: links}
	s.finish(s)
	return s, nil
}

// flattenLinks splices nested chains with equal options inline and reduces
// the flat sequence left to right, fusing every mergeable adjacent pair.
func flattenLinks(inputs []Signature, opts Options) []Signature {
	var out []Signature
	push := func(l Signature) {
		if n := len(out); n > 0 && CanMerge(out[n-1], l) {
			merged, err := Merge(out[n-1], l)
			if err == nil {
				out[n-1] = merged
				return
			}
		}
		out = append(out, l)
	}
	for _, in := range inputs {
		if c, ok := in.(*Chain); ok && c.opts.Equal(opts) {
			for _, l := range c.links {
				push(l)
			}
			continue
		}
		push(in)
	}
	return out
}

// Len returns the number of links.
func (s *Chain) Len() int { return len(s.links) }

// Link returns the i-th link.
func (s *Chain) Link(i int) Signature { return s.links[i] }

// Links returns a copy of the link sequence.
func (s *Chain) Links() []Signature {
	out := make([]Signature, len(s.links))
	copy(out, s.links)
	return out
}

// Contains reports whether any link equals l.
func (s *Chain) Contains(l Signature) bool {
	for _, link := range s.links {
		if link.Equal(l) {
			return true
		}
	}
	return false
}

func (s *Chain) Get(subject any) (any, error) {
	s.getOnce.Do(func() {
		links := s.links
		s.getFn = func(subject any) (any, error) {
			obj := subject
			for _, l := range links {
				v, err := l.Get(obj)
				if err != nil {
					return nil, err
				}
				obj = v
			}
			return obj, nil
		}
	})
	return s.getFn(subject)
}

// Set navigates all links but the last with get, then applies the last
// link's set. The pipeline is compiled on first use; a chain whose final
// link cannot set keeps returning the same MutationError.
func (s *Chain) Set(subject, value any) error {
	s.setOnce.Do(func() {
		if !s.CanSet() {
			s.setErr = &MutationError{Op: "set", Sig: s}
			return
		}
		head, last := s.links[:len(s.links)-1], s.links[len(s.links)-1]
		s.setFn = func(subject, value any) error {
			obj := subject
			for _, l := range head {
				v, err := l.Get(obj)
				if err != nil {
					return err
				}
				obj = v
			}
			return last.Set(obj, value)
		}
	})
	if s.setErr != nil {
		return s.setErr
	}
	return s.setFn(subject, value)
}

// Delete mirrors Set with the last link's delete.
func (s *Chain) Delete(subject any) error {
	s.delOnce.Do(func() {
		if !s.CanDelete() {
			s.delErr = &MutationError{Op: "delete", Sig: s}
			return
		}
		head, last := s.links[:len(s.links)-1], s.links[len(s.links)-1]
		s.delFn = func(subject any) error {
			obj := subject
			for _, l := range head {
				v, err := l.Get(obj)
				if err != nil {
					return err
				}
				obj = v
			}
			return last.Delete(obj)
		}
	})
	if s.delErr != nil {
		return s.delErr
	}
	return s.delFn(subject)
}

func (s *Chain) CanSet() bool {
	return len(s.links) > 0 && s.links[len(s.links)-1].CanSet()
}

func (s *Chain) CanDelete() bool {
	return len(s.links) > 0 && s.links[len(s.links)-1].CanDelete()
}

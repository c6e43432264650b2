package access

import (
	"fmt"
	"sort"
)

// Namespace is a mutable bag of named attributes. It is the dynamic-object
// counterpart to a struct: attributes can be set, re-set and deleted at
// runtime, which makes it the natural subject for accessor set/delete tests
// and for callers that build objects on the fly.
type Namespace struct {
	attrs map[string]any
}

// NewNamespace creates a Namespace pre-populated with the given attributes.
// A nil map creates an empty namespace.
func NewNamespace(attrs map[string]any) *Namespace {
	ns := &Namespace{attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		ns.attrs[k] = v
	}
	return ns
}

func (ns *Namespace) Get(name string) (any, error) {
	if v, ok := ns.attrs[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q on namespace", ErrAttribute, name)
}

func (ns *Namespace) Set(name string, value any) {
	if ns.attrs == nil {
		ns.attrs = make(map[string]any)
	}
	ns.attrs[name] = value
}

// Delete removes the named attribute. Deleting an absent attribute is an
// attribute failure, same as reading one.
func (ns *Namespace) Delete(name string) error {
	if _, ok := ns.attrs[name]; !ok {
		return fmt.Errorf("%w: %q on namespace", ErrAttribute, name)
	}
	delete(ns.attrs, name)
	return nil
}

func (ns *Namespace) Has(name string) bool {
	_, ok := ns.attrs[name]
	return ok
}

// Names returns the attribute names in sorted order.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.attrs))
	for k := range ns.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (ns *Namespace) String() string {
	return fmt.Sprintf("namespace%v", ns.Names())
}

package sig

import (
	"math"
	"reflect"
	"sort"
)

// Unbounded marks a kind without an upper arity limit.
const Unbounded = math.MaxInt

// OptDefault is the option key holding a traversal fallback value: a kind
// carrying it swallows its own lookup failures on get and returns the
// default instead.
const OptDefault = "default"

// Options is the string-keyed option mapping attached to a signature.
// Insertion order is irrelevant for equality.
type Options map[string]any

// Equal reports exact equality: same keys, same values. Signature values
// compare by signature equality, everything else by deep equality.
func (o Options) Equal(other Options) bool {
	if len(o) != len(other) {
		return false
	}
	for k, v := range o {
		w, ok := other[k]
		if !ok {
			return false
		}
		sv, svOK := v.(Signature)
		sw, swOK := w.(Signature)
		if svOK || swOK {
			if !svOK || !swOK || !sv.Equal(sw) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(v, w) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy. Cloning nil yields nil.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Keys returns the option keys in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Policy is the per-kind construction contract, fixed at kind-definition
// time: arity bounds, default padding, option whitelists and mergeability.
type Policy struct {
	// MinArgs and MaxArgs bound the positional arity, both inclusive.
	MinArgs, MaxArgs int
	// DefaultArgs pad missing tail positions.
	DefaultArgs []any
	// DefaultOptions are merged under explicit options.
	DefaultOptions Options
	// RequiredOptions must all be present at construction.
	RequiredOptions []string
	// AllowedOptions may appear beyond defaults and required keys.
	AllowedOptions []string
	// ExtraOptions permits arbitrary option keys (Call/Func bound kwargs).
	ExtraOptions bool
	// Merge permits fusing two adjacent instances of this kind.
	Merge bool
}

// allowed reports whether an option key may appear on this kind.
func (p Policy) allowed(key string) bool {
	if p.ExtraOptions {
		return true
	}
	if _, ok := p.DefaultOptions[key]; ok {
		return true
	}
	for _, k := range p.RequiredOptions {
		if k == key {
			return true
		}
	}
	for _, k := range p.AllowedOptions {
		if k == key {
			return true
		}
	}
	return false
}

// allowedKeys enumerates the full permitted key set for error messages.
func (p Policy) allowedKeys() []string {
	set := make(map[string]struct{})
	for k := range p.DefaultOptions {
		set[k] = struct{}{}
	}
	for _, k := range p.RequiredOptions {
		set[k] = struct{}{}
	}
	for _, k := range p.AllowedOptions {
		set[k] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var policies = [KindTotal]Policy{
	KindRef:    {MinArgs: 1, MaxArgs: 1},
	KindReturn: {MinArgs: 0, MaxArgs: 0, Merge: true},
	KindAttr:   {MinArgs: 1, MaxArgs: Unbounded, AllowedOptions: []string{OptDefault}, Merge: true},
	KindItem:   {MinArgs: 1, MaxArgs: Unbounded, AllowedOptions: []string{OptDefault}, Merge: true},
	KindSlice:  {MinArgs: 1, MaxArgs: Unbounded, Merge: true},
	KindCall:   {MinArgs: 0, MaxArgs: Unbounded, ExtraOptions: true},
	KindFunc:   {MinArgs: 1, MaxArgs: Unbounded, ExtraOptions: true},
	KindOperation: {
		MinArgs: 1, MaxArgs: Unbounded,
	},
	KindChain: {MinArgs: 0, MaxArgs: Unbounded},
}

// PolicyFor returns the construction policy for a kind.
func PolicyFor(k Kind) Policy {
	if k <= KindInvalid || int(k) >= KindTotal {
		return Policy{}
	}
	return policies[k]
}

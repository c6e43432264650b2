package sig

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"

	"sigchain/access"
	"sigchain/utils"
)

// Signature is an immutable value object describing one step, or a composed
// sequence of steps, of get/set/delete traversal. Two signatures are equal
// iff their identity (kind, args, options) is equal; all evolution produces
// a new instance, so signatures are safe to share across goroutines.
type Signature interface {
	Kind() Kind
	Args() []any
	Options() Options

	// Identity is the canonical (kind, args, options) rendering, computed
	// once at construction. Hash is derived from it.
	Identity() string
	Hash() uint64
	Equal(Signature) bool

	// Extend produces a new signature of the same kind with the extra args
	// appended and the extra options merged over the current ones.
	Extend(args []any, opts Options) (Signature, error)

	Get(subject any) (any, error)
	Set(subject, value any) error
	Delete(subject any) error

	// CanSet and CanDelete report whether the node structurally supports
	// the mutation; Set/Delete on a node that does not return a
	// MutationError.
	CanSet() bool
	CanDelete() bool

	fmt.Stringer
}

// Construct builds and validates a signature of the given kind, applying
// the kind's policy: arity bounds, default-arg padding, required and
// allowed option checks, and default-option underlay. It is the single
// entry point every typed constructor and Reconstruct funnel through.
func Construct(kind Kind, args []any, opts Options) (Signature, error) {
	if kind <= KindInvalid || int(kind) >= KindTotal {
		return nil, fmt.Errorf("sig: invalid kind %d", int(kind))
	}
	p := PolicyFor(kind)

	if !utils.IsInRange(p.MinArgs, len(args), p.MaxArgs) {
		return nil, &ArityError{Kind: kind, Min: p.MinArgs, Max: p.MaxArgs, Got: len(args)}
	}
	merged := make([]any, len(args), len(args)+len(p.DefaultArgs))
	copy(merged, args)
	if len(merged) < len(p.DefaultArgs) {
		merged = append(merged, p.DefaultArgs[len(merged):]...)
	}

	var missing []string
	for _, k := range p.RequiredOptions {
		if _, ok := opts[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingOptionError{Kind: kind, Missing: missing}
	}
	if !p.ExtraOptions {
		var unexpected []string
		for _, k := range opts.Keys() {
			if !p.allowed(k) {
				unexpected = append(unexpected, k)
			}
		}
		if len(unexpected) > 0 {
			return nil, &UnexpectedOptionError{
				Kind: kind, Unexpected: unexpected, Allowed: p.allowedKeys(),
			}
		}
	}
	options := p.DefaultOptions.Clone()
	if options == nil && len(opts) > 0 {
		options = make(Options, len(opts))
	}
	for k, v := range opts {
		options[k] = v
	}

	switch kind {
	case KindRef:
		return newRef(merged, options)
	case KindReturn:
		return newReturn(merged, options)
	case KindAttr:
		return newAttr(merged, options)
	case KindItem:
		return newItem(merged, options)
	case KindSlice:
		return newSlice(merged, options)
	case KindCall:
		return newCall(merged, options)
	case KindFunc:
		return newFunc(merged, options)
	case KindOperation:
		return newOperation(merged, options, nil)
	case KindChain:
		return newChain(merged, options)
	}
	return nil, fmt.Errorf("sig: invalid kind %d", int(kind))
}

// base carries the identity shared by every node kind. Concrete kinds embed
// it and freeze it through finish exactly once, at construction.
type base struct {
	kind  Kind
	args  []any
	opts  Options
	self  Signature
	ident string
	hsum  uint64
}

// finish seals the node: records the concrete self for error reporting and
// computes identity and hash.
func (b *base) finish(self Signature) {
	b.self = self
	b.ident = renderIdentity(b.kind, b.args, b.opts)
	h := fnv.New64a()
	h.Write([]byte(b.ident))
	b.hsum = h.Sum64()
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) Args() []any {
	out := make([]any, len(b.args))
	copy(out, b.args)
	return out
}

func (b *base) Options() Options { return b.opts.Clone() }

func (b *base) Identity() string { return b.ident }

func (b *base) Hash() uint64 { return b.hsum }

func (b *base) Equal(o Signature) bool {
	return o != nil && b.kind == o.Kind() && b.ident == o.Identity()
}

func (b *base) String() string { return b.ident }

func (b *base) Extend(args []any, opts Options) (Signature, error) {
	merged := make([]any, 0, len(b.args)+len(args))
	merged = append(merged, b.args...)
	merged = append(merged, args...)
	options := b.opts.Clone()
	if options == nil && len(opts) > 0 {
		options = make(Options, len(opts))
	}
	for k, v := range opts {
		options[k] = v
	}
	return Construct(b.kind, merged, options)
}

func (b *base) Set(subject, value any) error {
	return &MutationError{Op: "set", Sig: b.self}
}

func (b *base) Delete(subject any) error {
	return &MutationError{Op: "delete", Sig: b.self}
}

func (b *base) CanSet() bool    { return false }
func (b *base) CanDelete() bool { return false }

// defaultValue returns the traversal fallback, if one was configured.
func (b *base) defaultValue() (any, bool) {
	v, ok := b.opts[OptDefault]
	return v, ok
}

func renderIdentity(kind Kind, args []any, opts Options) string {
	var sb strings.Builder
	sb.WriteString(kind.String())
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(renderValue(a))
	}
	sb.WriteByte(')')
	if len(opts) > 0 {
		sb.WriteByte('{')
		for i, k := range opts.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(renderValue(opts[k]))
		}
		sb.WriteByte('}')
	}
	return sb.String()
}

// renderValue renders an arg or option value canonically. Slices and other
// non-comparable literals go through their own stable renderings so the
// result is usable as a hash/equality key.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case Signature:
		return t.Identity()
	case access.SliceSpec:
		return t.String()
	case string:
		return strconv.Quote(t)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", t)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return fmt.Sprintf("func@%x", rv.Pointer())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = renderValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]string, rv.Len())
		for _, k := range rv.MapKeys() {
			ks := renderValue(k.Interface())
			keys = append(keys, ks)
			byKey[ks] = renderValue(rv.MapIndex(k).Interface())
		}
		utils.SortStrings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + byKey[k]
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Pointer:
		return fmt.Sprintf("%T@%x", v, rv.Pointer())
	}
	return fmt.Sprintf("%T(%v)", v, v)
}

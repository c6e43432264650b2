package sig

import (
	"fmt"
	"reflect"
	"strings"
)

// pathPrefix is the package qualifier all deconstruct paths share.
const pathPrefix = "sigchain/sig."

// Deconstruct renders s as a reconstructable (path, args, options) triple.
// Trailing args still holding their policy default and options equal to
// their policy default are trimmed, so the triple is minimal.
func Deconstruct(s Signature) (path string, args []any, opts Options) {
	p := PolicyFor(s.Kind())
	args = s.Args()

	if n := len(p.DefaultArgs); n > 0 && len(args) >= p.MinArgs {
		for len(args) > p.MinArgs {
			i := len(args) - 1
			d := i - p.MinArgs
			if d >= n || !reflect.DeepEqual(args[i], p.DefaultArgs[d]) {
				break
			}
			args = args[:i]
		}
	}

	opts = s.Options().Clone()
	for k, v := range p.DefaultOptions {
		if w, ok := opts[k]; ok && reflect.DeepEqual(v, w) {
			delete(opts, k)
		}
	}
	if len(opts) == 0 {
		opts = nil
	}

	return pathPrefix + s.Kind().String(), args, opts
}

// Reconstruct rebuilds a signature from a Deconstruct triple. The
// round-trip Reconstruct(Deconstruct(s)) yields a signature equal to s.
func Reconstruct(path string, args []any, opts Options) (Signature, error) {
	name, ok := strings.CutPrefix(path, pathPrefix)
	if !ok {
		return nil, fmt.Errorf("sig: unknown signature path %q", path)
	}
	kind := kindByName(name)
	if kind == KindInvalid {
		return nil, fmt.Errorf("sig: unknown signature path %q", path)
	}
	return Construct(kind, args, opts)
}

func kindByName(name string) Kind {
	for k := KindRef; int(k) < KindTotal; k++ {
		if k.String() == name {
			return k
		}
	}
	return KindInvalid
}

package sig

// CanMerge reports whether a and b collapse into a single signature: both
// non-nil, same mergeable kind, options exactly equal.
func CanMerge(a, b Signature) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() || !PolicyFor(a.Kind()).Merge {
		return false
	}
	return a.Options().Equal(b.Options())
}

// Merge fuses b into a by concatenating the argument lists. The result is
// validated like any fresh construction, so a fusion that would exceed the
// kind's arity fails.
func Merge(a, b Signature) (Signature, error) {
	if !CanMerge(a, b) {
		return nil, &MutationError{Op: "merge", Sig: a}
	}
	return a.Extend(b.Args(), nil)
}

// Compose joins a and b into one signature: a merge when the pair allows
// it, a chain otherwise. A chain that reduces to a single link is unwrapped.
func Compose(a, b Signature) (Signature, error) {
	if CanMerge(a, b) {
		return Merge(a, b)
	}
	c, err := NewChain(a, b)
	if err != nil {
		return nil, err
	}
	if c.Len() == 1 {
		return c.Link(0), nil
	}
	return c, nil
}

// ComposeAll folds Compose over the sequence left to right.
func ComposeAll(sigs ...Signature) (Signature, error) {
	if len(sigs) == 0 {
		return NewChain()
	}
	out := sigs[0]
	for _, s := range sigs[1:] {
		next, err := Compose(out, s)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

package sig

// Getter reads a value out of a subject.
type Getter func(subject any) (any, error)

// Setter writes a value into a subject.
type Setter func(subject, value any) error

// Deleter removes a value from a subject.
type Deleter func(subject any) error

// CompileGetter binds s into a standalone getter.
func CompileGetter(s Signature) Getter {
	return s.Get
}

// CompileSetter binds s into a standalone setter. Signatures that cannot
// set yield a function returning the same MutationError on every call.
func CompileSetter(s Signature) Setter {
	if !s.CanSet() {
		err := &MutationError{Op: "set", Sig: s}
		return func(any, any) error { return err }
	}
	return s.Set
}

// CompileDeleter binds s into a standalone deleter, mirroring CompileSetter.
func CompileDeleter(s Signature) Deleter {
	if !s.CanDelete() {
		err := &MutationError{Op: "delete", Sig: s}
		return func(any) error { return err }
	}
	return s.Delete
}

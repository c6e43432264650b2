package sig

import (
	"errors"
	"fmt"
	"strings"

	"sigchain/access"
)

// Traversal failures all match ErrSignature; lookup refinements also match
// ErrLookup. The chains are wired through AccessError and MutationError so
// existing errors.Is handlers keep working at whichever level they target.
var (
	ErrSignature   = errors.New("signature error")
	ErrAttribute   = errors.New("attribute signature error")
	ErrLookup      = errors.New("lookup signature error")
	ErrKey         = errors.New("key signature error")
	ErrIndex       = errors.New("index signature error")
	ErrUnsupported = errors.New("unsupported mutation")
)

// ArityError reports a positional argument count outside a kind's bounds.
type ArityError struct {
	Kind     Kind
	Min, Max int
	Got      int
}

func (e *ArityError) Error() string {
	max := "unbounded"
	if e.Max != Unbounded {
		max = fmt.Sprint(e.Max)
	}
	if e.Min == e.Max {
		return fmt.Sprintf("sig: %s expects %d arguments, got %d", e.Kind, e.Min, e.Got)
	}
	return fmt.Sprintf("sig: %s expects %d to %s arguments, got %d", e.Kind, e.Min, max, e.Got)
}

// MissingOptionError reports required option keys absent at construction.
type MissingOptionError struct {
	Kind    Kind
	Missing []string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("sig: %s is missing required options %s",
		e.Kind, quoteList(e.Missing))
}

// UnexpectedOptionError reports option keys a kind does not accept.
type UnexpectedOptionError struct {
	Kind       Kind
	Unexpected []string
	Allowed    []string
}

func (e *UnexpectedOptionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		allowed = quoteList(e.Allowed)
	}
	return fmt.Sprintf("sig: %s got unexpected options %s (allowed: %s)",
		e.Kind, quoteList(e.Unexpected), allowed)
}

func quoteList(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}

// AccessError is a traversal failure: a signature step that could not be
// resolved against the subject. It carries the signature, the failing step
// and the native cause, and matches the class sentinels via errors.Is.
type AccessError struct {
	Sig   Signature
	Step  any
	Class error // ErrAttribute, ErrKey, ErrIndex or ErrLookup
	Cause error
}

func (e *AccessError) Error() string {
	msg := fmt.Sprintf("sig: %v failed at step %v", e.Sig, e.Step)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AccessError) Unwrap() []error {
	chain := []error{e.Class, ErrSignature}
	if e.Class == ErrKey || e.Class == ErrIndex {
		chain = append(chain, ErrLookup)
	}
	if e.Cause != nil {
		chain = append(chain, e.Cause)
	}
	return chain
}

// MutationError reports a set or delete requested on a signature that
// structurally cannot support it.
type MutationError struct {
	Op  string // "set" or "delete"
	Sig Signature
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("sig: %s not supported by %v", e.Op, e.Sig)
}

func (e *MutationError) Unwrap() []error {
	return []error{ErrUnsupported, ErrSignature}
}

// classify maps a native access failure onto the taxonomy class sentinel.
func classify(err error) error {
	switch {
	case errors.Is(err, access.ErrAttribute):
		return ErrAttribute
	case errors.Is(err, access.ErrKey):
		return ErrKey
	case errors.Is(err, access.ErrIndex):
		return ErrIndex
	default:
		return ErrLookup
	}
}

func accessErr(s Signature, step any, err error) error {
	return &AccessError{Sig: s, Step: step, Class: classify(err), Cause: err}
}

func attrErr(s Signature, step any, err error) error {
	return &AccessError{Sig: s, Step: step, Class: ErrAttribute, Cause: err}
}

// Package access implements the native traversal primitives the signature
// kinds delegate to: attribute, item and slice access over arbitrary Go
// values, plus callable invocation.
//
// Key capabilities:
//   - Attribute access on Namespace objects, string-keyed maps and structs
//   - Item access on maps, slices, arrays and strings with negative indexing
//   - Open-bounded, negative-index slice extraction and splicing
//   - Invocation of Callable funcs, KwCallable values and plain functions
//
// All failures are classified into the package sentinels (ErrAttribute,
// ErrKey, ErrIndex, ErrLookup, ErrNotCallable) so callers can re-wrap them
// without inspecting reflect internals.
package access

// Package codec serializes signatures to and from YAML.
//
// A signature is rendered as its deconstruct triple:
//
//	path: sigchain/sig.Attr
//	args: [owner, name]
//	options: {default: anonymous}
//
// Nested signatures (chain links, operation operands, constants) encode
// recursively as the same mapping shape and are recognized on decode by
// their path prefix. Slicing selections encode as 3-element bound lists
// with null for an open bound. Func signatures carry a live function
// value and cannot be serialized.
package codec

// Package sig implements composable accessor signatures: immutable value
// objects describing attribute, item, slice, call and operator traversals
// that can be merged, chained into pipelines and executed against arbitrary
// subjects to get, set or delete a value.
package sig

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind discriminates signature node types.
type Kind int

const (
	KindInvalid Kind = iota

	KindRef
	KindReturn
	KindAttr
	KindItem
	KindSlice
	KindCall
	KindFunc
	KindOperation
	KindChain

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchain/ops"
)

func TestRegistry(t *testing.T) {
	reg := ops.NewRegistry()
	assert.False(t, reg.Has("double"))

	err := reg.Register("double", func(operands ...any) (any, error) {
		return operands[0].(int) * 2, nil
	})
	require.NoError(t, err)
	assert.True(t, reg.Has("double"))

	fn, ok := reg.Lookup("double")
	require.True(t, ok)
	v, err := fn(21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, ok = reg.Lookup("triple")
	assert.False(t, ok)
	_, err = reg.Apply("triple", 1)
	assert.ErrorIs(t, err, ops.ErrUnknownOperator)

	assert.ErrorIs(t, reg.Register("", fn), ops.ErrBadOperands)
	assert.ErrorIs(t, reg.Register("nothing", nil), ops.ErrBadOperands)

	// Re-registration overwrites.
	require.NoError(t, reg.Register("double", func(operands ...any) (any, error) {
		return "changed", nil
	}))
	v, err = reg.Apply("double", 1)
	require.NoError(t, err)
	assert.Equal(t, "changed", v)
}

func TestRegistryNames(t *testing.T) {
	reg := ops.NewRegistry()
	noop := func(operands ...any) (any, error) { return nil, nil }
	require.NoError(t, reg.Register("b", noop))
	require.NoError(t, reg.Register("a", noop))
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}

func TestDefaultRegistry(t *testing.T) {
	reg := ops.Default()
	for _, name := range []string{"lt", "eq", "add", "floordiv", "contains", "getattr"} {
		assert.True(t, reg.Has(name), name)
	}
	// The same instance every time.
	assert.Same(t, reg, ops.Default())
}

func TestBuiltinsArithmetic(t *testing.T) {
	reg := ops.Default()

	cases := []struct {
		op       string
		operands []any
		want     any
	}{
		{"add", []any{2, 3}, int64(5)},
		{"add", []any{1.5, 2}, 3.5},
		{"add", []any{"a", "b"}, "ab"},
		{"sub", []any{5, 8}, int64(-3)},
		{"mul", []any{4, 4}, int64(16)},
		{"div", []any{7, 2}, 3.5},
		{"floordiv", []any{7, 2}, int64(3)},
		{"floordiv", []any{-7, 2}, int64(-4)},
		{"mod", []any{7, 3}, int64(1)},
		{"mod", []any{-7, 3}, int64(2)},
		{"neg", []any{5}, int64(-5)},
		{"abs", []any{-5}, int64(5)},
		{"abs", []any{-1.5}, 1.5},
		{"invert", []any{0}, int64(-1)},
		{"lshift", []any{1, 4}, int64(16)},
	}
	for _, tc := range cases {
		v, err := reg.Apply(tc.op, tc.operands...)
		require.NoError(t, err, tc.op)
		assert.Equal(t, tc.want, v, tc.op)
	}

	_, err := reg.Apply("div", 1, 0)
	assert.ErrorIs(t, err, ops.ErrBadOperands)
	_, err = reg.Apply("add", 1, struct{}{})
	assert.ErrorIs(t, err, ops.ErrBadOperands)
	_, err = reg.Apply("add", 1)
	assert.ErrorIs(t, err, ops.ErrBadOperands)
}

func TestBuiltinsComparisons(t *testing.T) {
	reg := ops.Default()

	cases := []struct {
		op       string
		operands []any
		want     bool
	}{
		{"lt", []any{1, 2}, true},
		{"le", []any{2, 2}, true},
		{"gt", []any{2, 2}, false},
		{"ge", []any{3, 2}, true},
		{"lt", []any{"a", "b"}, true},
		{"eq", []any{2, int64(2)}, true},
		{"eq", []any{2, 2.0}, true},
		{"eq", []any{"x", "x"}, true},
		{"ne", []any{"x", "y"}, true},
		{"eq", []any{[]int{1}, []int{1}}, true},
		{"not", []any{0}, true},
		{"not", []any{"x"}, false},
		{"truth", []any{[]int{1}}, true},
		{"truth", []any{""}, false},
		{"contains", []any{"hello", "ell"}, true},
		{"contains", []any{[]int{1, 2}, 2}, true},
		{"contains", []any{map[string]any{"k": 1}, "k"}, true},
	}
	for _, tc := range cases {
		v, err := reg.Apply(tc.op, tc.operands...)
		require.NoError(t, err, tc.op)
		assert.Equal(t, tc.want, v, tc.op)
	}

	_, err := reg.Apply("lt", 1, "a")
	assert.ErrorIs(t, err, ops.ErrBadOperands)
}

func TestBuiltinsAccess(t *testing.T) {
	reg := ops.Default()

	v, err := reg.Apply("getitem", []string{"a", "b"}, -1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = reg.Apply("getattr", map[string]any{"name": "x"}, "name")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = reg.Apply("concat", []int{1}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, v)
}

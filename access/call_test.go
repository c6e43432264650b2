package access_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchain/access"
)

type greeter struct{ prefix string }

func (g greeter) CallKw(args []any, kwargs map[string]any) (any, error) {
	name, _ := kwargs["name"].(string)
	if name == "" && len(args) > 0 {
		name, _ = args[0].(string)
	}
	if name == "" {
		return nil, errors.New("who?")
	}
	return g.prefix + name, nil
}

func TestCallCallable(t *testing.T) {
	sum := access.Callable(func(args ...any) (any, error) {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total, nil
	})

	v, err := access.Call(sum, []any{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = access.Call(sum, nil, map[string]any{"base": 1})
	assert.ErrorIs(t, err, access.ErrNotCallable)
}

func TestCallKwCallable(t *testing.T) {
	g := greeter{prefix: "hi "}

	v, err := access.Call(g, nil, map[string]any{"name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "hi ada", v)

	v, err = access.Call(g, []any{"bob"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hi bob", v)

	_, err = access.Call(g, nil, nil)
	assert.EqualError(t, err, "who?")
}

func TestCallReflected(t *testing.T) {
	v, err := access.Call(strings.ToUpper, []any{"go"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "GO", v)

	// Trailing error results unwrap.
	div := func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}
	v, err = access.Call(div, []any{10, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = access.Call(div, []any{1, 0}, nil)
	assert.EqualError(t, err, "division by zero")

	// Variadic functions take any surplus.
	v, err = access.Call(fmt.Sprintf, []any{"%s-%d", "a", 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a-1", v)

	_, err = access.Call(div, []any{1}, nil)
	assert.ErrorIs(t, err, access.ErrNotCallable)

	_, err = access.Call(div, []any{"x", "y"}, nil)
	assert.ErrorIs(t, err, access.ErrNotCallable)

	// Multiple non-error results come back as a list.
	cut := func(s string) (string, string) { return s[:1], s[1:] }
	v, err = access.Call(cut, []any{"go"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"g", "o"}, v)

	_, err = access.Call(42, nil, nil)
	assert.ErrorIs(t, err, access.ErrNotCallable)

	_, err = access.Call(strings.ToUpper, []any{"x"}, map[string]any{"k": 1})
	assert.ErrorIs(t, err, access.ErrNotCallable)
}

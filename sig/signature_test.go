package sig_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchain/sig"
)

func TestConstructArity(t *testing.T) {
	_, err := sig.Construct(sig.KindRef, nil, nil)
	var arity *sig.ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, sig.KindRef, arity.Kind)
	assert.Equal(t, 0, arity.Got)

	_, err = sig.Construct(sig.KindRef, []any{1, 2}, nil)
	assert.ErrorAs(t, err, &arity)

	_, err = sig.Construct(sig.KindAttr, nil, nil)
	assert.ErrorAs(t, err, &arity)

	_, err = sig.Construct(sig.KindReturn, []any{1}, nil)
	assert.ErrorAs(t, err, &arity)
}

func TestConstructOptions(t *testing.T) {
	// Attr takes only "default".
	_, err := sig.NewAttrOpts(sig.Options{"default": 1}, "name")
	require.NoError(t, err)

	_, err = sig.NewAttrOpts(sig.Options{"fallback": 1}, "name")
	var unexpected *sig.UnexpectedOptionError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, []string{"fallback"}, unexpected.Unexpected)
	assert.Equal(t, []string{"default"}, unexpected.Allowed)

	// Call takes arbitrary options as bound keyword arguments.
	_, err = sig.NewCallOpts(sig.Options{"anything": true})
	require.NoError(t, err)

	_, err = sig.Construct(sig.KindSlice, []any{0}, sig.Options{"default": 1})
	assert.ErrorAs(t, err, &unexpected)
}

func TestIdentity(t *testing.T) {
	a, err := sig.NewAttr("owner", "name")
	require.NoError(t, err)
	assert.Equal(t, `Attr("owner", "name")`, a.Identity())
	assert.Equal(t, a.Identity(), fmt.Sprint(a))

	b, err := sig.NewAttr("owner.name")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c, err := sig.NewAttrOpts(sig.Options{"default": "x"}, "owner", "name")
	require.NoError(t, err)
	assert.Equal(t, `Attr("owner", "name"){default="x"}`, c.Identity())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	// Option order never matters.
	d, err := sig.NewCallOpts(sig.Options{"a": 1, "b": 2})
	require.NoError(t, err)
	e, err := sig.NewCallOpts(sig.Options{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.True(t, d.Equal(e))
	assert.Equal(t, d.Hash(), e.Hash())
}

func TestIdentityAcrossKinds(t *testing.T) {
	attr, err := sig.NewAttr("x")
	require.NoError(t, err)
	item, err := sig.NewItem("x")
	require.NoError(t, err)
	assert.False(t, attr.Equal(item))
	assert.False(t, attr.Equal(nil))
}

func TestExtend(t *testing.T) {
	a, err := sig.NewAttr("owner")
	require.NoError(t, err)

	ext, err := a.Extend([]any{"name"}, nil)
	require.NoError(t, err)
	assert.Equal(t, sig.KindAttr, ext.Kind())
	assert.Equal(t, []any{"owner", "name"}, ext.Args())

	// The source is untouched.
	assert.Equal(t, []any{"owner"}, a.Args())

	// Extension re-validates.
	r, err := sig.NewRef(1)
	require.NoError(t, err)
	_, err = r.Extend([]any{2}, nil)
	var arity *sig.ArityError
	assert.ErrorAs(t, err, &arity)
}

func TestArgsAndOptionsAreCopies(t *testing.T) {
	s, err := sig.NewItemOpts(sig.Options{"default": 0}, "k")
	require.NoError(t, err)

	args := s.Args()
	args[0] = "mutated"
	opts := s.Options()
	opts["default"] = 99

	assert.Equal(t, []any{"k"}, s.Args())
	assert.Equal(t, sig.Options{"default": 0}, s.Options())
}

func ExampleConstruct() {
	s, _ := sig.Construct(sig.KindItem, []any{"users", 0}, nil)
	fmt.Println(s)

	_, err := sig.Construct(sig.KindRef, nil, nil)
	fmt.Println(err)

	// Output:
	// Item("users", 0)
	// sig: Ref expects 1 arguments, got 0
}

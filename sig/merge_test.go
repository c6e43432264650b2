package sig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchain/sig"
)

func mustAttr(t *testing.T, names ...string) *sig.Attr {
	t.Helper()
	s, err := sig.NewAttr(names...)
	require.NoError(t, err)
	return s
}

func TestCanMerge(t *testing.T) {
	a := mustAttr(t, "a")
	b := mustAttr(t, "b")
	assert.True(t, sig.CanMerge(a, b))
	assert.True(t, sig.CanMerge(a, a))

	item, err := sig.NewItem("k")
	require.NoError(t, err)
	assert.False(t, sig.CanMerge(a, item))

	// Options must match exactly.
	withDefault, err := sig.NewAttrOpts(sig.Options{"default": 1}, "b")
	require.NoError(t, err)
	assert.False(t, sig.CanMerge(a, withDefault))

	sameDefault, err := sig.NewAttrOpts(sig.Options{"default": 1}, "a")
	require.NoError(t, err)
	assert.True(t, sig.CanMerge(sameDefault, withDefault))

	// Refs bind a constant each; fusing them would change arity.
	r1, err := sig.NewRef(1)
	require.NoError(t, err)
	r2, err := sig.NewRef(2)
	require.NoError(t, err)
	assert.False(t, sig.CanMerge(r1, r2))

	assert.False(t, sig.CanMerge(a, nil))
	assert.False(t, sig.CanMerge(nil, a))
}

func TestMerge(t *testing.T) {
	merged, err := sig.Merge(mustAttr(t, "a"), mustAttr(t, "b"))
	require.NoError(t, err)
	assert.True(t, merged.Equal(mustAttr(t, "a", "b")))

	_, err = sig.Merge(mustAttr(t, "a"), sig.NewReturn())
	assert.ErrorIs(t, err, sig.ErrUnsupported)

	// Merging identity traversals is the identity traversal.
	ret, err := sig.Merge(sig.NewReturn(), sig.NewReturn())
	require.NoError(t, err)
	assert.True(t, ret.Equal(sig.NewReturn()))
}

func TestCompose(t *testing.T) {
	// Mergeable pairs fuse instead of chaining.
	s, err := sig.Compose(mustAttr(t, "a"), mustAttr(t, "b"))
	require.NoError(t, err)
	assert.Equal(t, sig.KindAttr, s.Kind())
	assert.True(t, s.Equal(mustAttr(t, "a.b")))

	// Distinct kinds chain.
	item, err := sig.NewItem(0)
	require.NoError(t, err)
	c, err := sig.Compose(mustAttr(t, "a"), item)
	require.NoError(t, err)
	require.Equal(t, sig.KindChain, c.Kind())
	assert.Equal(t, 2, c.(*sig.Chain).Len())
}

func TestComposeAll(t *testing.T) {
	item, err := sig.NewItem(0)
	require.NoError(t, err)

	s, err := sig.ComposeAll(mustAttr(t, "a"), mustAttr(t, "b"), item, mustAttr(t, "c"))
	require.NoError(t, err)
	chain, ok := s.(*sig.Chain)
	require.True(t, ok)
	require.Equal(t, 3, chain.Len())
	assert.True(t, chain.Link(0).Equal(mustAttr(t, "a", "b")))
	assert.True(t, chain.Link(1).Equal(item))
	assert.True(t, chain.Link(2).Equal(mustAttr(t, "c")))

	// Path equivalence: however the same steps are grouped, the composed
	// signature is the same.
	left, err := sig.Compose(mustAttr(t, "a"), mustAttr(t, "b"))
	require.NoError(t, err)
	viaLeft, err := sig.Compose(left, item)
	require.NoError(t, err)

	right, err := sig.Compose(mustAttr(t, "b"), item)
	require.NoError(t, err)
	viaRight, err := sig.Compose(mustAttr(t, "a"), right)
	require.NoError(t, err)
	assert.True(t, viaLeft.Equal(viaRight))

	direct, err := sig.ComposeAll(mustAttr(t, "a"), mustAttr(t, "b"), item)
	require.NoError(t, err)
	assert.True(t, viaLeft.Equal(direct))

	empty, err := sig.ComposeAll()
	require.NoError(t, err)
	assert.Equal(t, sig.KindChain, empty.Kind())
}

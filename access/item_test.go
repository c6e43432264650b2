package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchain/access"
)

func TestGetItemMap(t *testing.T) {
	m := map[string]any{"x": 1}

	v, err := access.GetItem(m, "x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = access.GetItem(m, "y")
	assert.ErrorIs(t, err, access.ErrKey)

	// Key conversion stays within the same kind family.
	byID := map[int64]string{7: "seven"}
	v, err = access.GetItem(byID, 7)
	require.NoError(t, err)
	assert.Equal(t, "seven", v)

	_, err = access.GetItem(m, 1)
	assert.ErrorIs(t, err, access.ErrKey)
}

func TestGetItemSequence(t *testing.T) {
	xs := []string{"a", "b", "c"}

	v, err := access.GetItem(xs, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	// Negative indices count from the end.
	v, err = access.GetItem(xs, -1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	_, err = access.GetItem(xs, 3)
	assert.ErrorIs(t, err, access.ErrIndex)
	_, err = access.GetItem(xs, -4)
	assert.ErrorIs(t, err, access.ErrIndex)
	_, err = access.GetItem(xs, "0")
	assert.ErrorIs(t, err, access.ErrIndex)

	v, err = access.GetItem("abc", -1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	_, err = access.GetItem(42, 0)
	assert.ErrorIs(t, err, access.ErrLookup)
}

func TestSetItem(t *testing.T) {
	m := map[string]int{}
	require.NoError(t, access.SetItem(m, "n", 5))
	assert.Equal(t, 5, m["n"])

	xs := []int{1, 2, 3}
	require.NoError(t, access.SetItem(xs, -1, 9))
	assert.Equal(t, []int{1, 2, 9}, xs)

	// Arrays need a pointer to be addressable.
	arr := [2]int{1, 2}
	assert.ErrorIs(t, access.SetItem(arr, 0, 9), access.ErrIndex)
	require.NoError(t, access.SetItem(&arr, 0, 9))
	assert.Equal(t, [2]int{9, 2}, arr)

	assert.ErrorIs(t, access.SetItem("abc", 0, "z"), access.ErrLookup)
}

func TestDelItem(t *testing.T) {
	m := map[string]any{"x": 1, "y": 2}
	require.NoError(t, access.DelItem(m, "x"))
	assert.Equal(t, map[string]any{"y": 2}, m)
	assert.ErrorIs(t, access.DelItem(m, "x"), access.ErrKey)

	// Removing a slice element changes length, so a plain slice value
	// cannot take it.
	xs := []int{1, 2, 3}
	assert.ErrorIs(t, access.DelItem(xs, 1), access.ErrIndex)

	require.NoError(t, access.DelItem(&xs, 1))
	assert.Equal(t, []int{1, 3}, xs)

	require.NoError(t, access.DelItem(&xs, -1))
	assert.Equal(t, []int{1}, xs)
}

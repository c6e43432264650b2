package sig_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchain/sig"
)

func TestItemGet(t *testing.T) {
	subject := map[string]any{
		"users": []any{
			map[string]any{"name": "alice"},
			map[string]any{"name": "bob"},
		},
	}

	s, err := sig.NewItem("users", 1, "name")
	require.NoError(t, err)
	v, err := s.Get(subject)
	require.NoError(t, err)
	assert.Equal(t, "bob", v)

	// Negative indices count from the end.
	last, err := sig.NewItem("users", -1, "name")
	require.NoError(t, err)
	v, err = last.Get(subject)
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
}

func TestItemGetClassification(t *testing.T) {
	subject := map[string]any{"xs": []any{1, 2}}

	missingKey, err := sig.NewItem("ys")
	require.NoError(t, err)
	_, err = missingKey.Get(subject)
	assert.ErrorIs(t, err, sig.ErrKey)
	assert.ErrorIs(t, err, sig.ErrLookup)
	assert.ErrorIs(t, err, sig.ErrSignature)

	outOfRange, err := sig.NewItem("xs", 5)
	require.NoError(t, err)
	_, err = outOfRange.Get(subject)
	assert.ErrorIs(t, err, sig.ErrIndex)
	assert.ErrorIs(t, err, sig.ErrLookup)

	// The step that failed is carried on the error.
	var ae *sig.AccessError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 5, ae.Step)
}

func TestItemDefault(t *testing.T) {
	subject := map[string]any{"x": 1}

	s, err := sig.NewItemOpts(sig.Options{"default": -1}, "y")
	require.NoError(t, err)
	v, err := s.Get(subject)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}

func TestItemSetDelete(t *testing.T) {
	subject := map[string]any{
		"user": map[string]any{"name": "alice"},
	}

	s, err := sig.NewItem("user", "name")
	require.NoError(t, err)
	require.NoError(t, s.Set(subject, "bob"))
	assert.Equal(t, "bob", subject["user"].(map[string]any)["name"])

	require.NoError(t, s.Delete(subject))
	_, err = s.Get(subject)
	assert.ErrorIs(t, err, sig.ErrKey)

	var ae *sig.AccessError
	require.True(t, errors.As(err, &ae))
	assert.Same(t, any(s), ae.Sig)
}

package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sigchain/utils"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, utils.IsInRange(0, 1, 5))
	assert.True(t, utils.IsInRange(1, 1, 1))
	assert.False(t, utils.IsInRange(2, 1, 5))
	assert.True(t, utils.IsInRange(0.5, 0.75, 1.0))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, utils.SortedKeys(m))
	assert.Empty(t, utils.SortedKeys(map[string]int(nil)))
}

func TestSortStrings(t *testing.T) {
	s := []string{"z", "a", "m"}
	assert.Equal(t, []string{"a", "m", "z"}, utils.SortStrings(s))
}

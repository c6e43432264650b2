package utils

import "sort"

// SortStrings sorts s in place and returns it for chaining.
func SortStrings(s []string) []string {
	sort.Strings(s)
	return s
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package builder

import "strconv"

// IDFn generates a node label from its zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn labels nodes N0, N1, ...
func DefaultIDFn(idx int) string {
	return "N" + strconv.Itoa(idx)
}

// PrefixIDFn labels nodes prefix0, prefix1, ... An empty prefix yields bare
// indices.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

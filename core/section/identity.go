package section

import "reflect"

// Equaler is implemented by models that define their own identity.
type Equaler interface {
	Equal(other any) bool
}

// Same reports whether a and b refer to the same model. Models implementing
// Equaler decide for themselves; otherwise comparable values are compared
// with ==, which means pointer identity for pointers. Values of
// non-comparable types without an Equal method never match.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

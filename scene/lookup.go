package scene

// Lookup returns the first unit of e assignable to T. Interface types match
// any implementing unit; pointer types match exactly.
func Lookup[T any](e *Entity) (T, bool) {
	for _, u := range e.units {
		if t, ok := u.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Get returns the first unit of e assignable to T, or the zero value.
func Get[T any](e *Entity) T {
	t, _ := Lookup[T](e)
	return t
}

// GetAll returns every unit of e assignable to T in insertion order.
func GetAll[T any](e *Entity) []T {
	var out []T
	for _, u := range e.units {
		if t, ok := u.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Has reports whether e has a unit assignable to T.
func Has[T any](e *Entity) bool {
	_, ok := Lookup[T](e)
	return ok
}

// Remove detaches the first removable unit assignable to T.
func Remove[T any](e *Entity) bool {
	for _, u := range e.units[1:] {
		if _, ok := u.(T); ok {
			return e.RemoveUnit(u)
		}
	}
	return false
}

// RemoveAll detaches every removable unit assignable to T and returns how many
// were removed.
func RemoveAll[T any](e *Entity) int {
	removed := 0
	for _, u := range e.units[1:] {
		if _, ok := u.(T); ok && e.RemoveUnit(u) {
			removed++
		}
	}
	return removed
}

package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value or the zero value of T.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

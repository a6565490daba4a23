package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePositive is Coalesce for counters where zero or negative means "not set".
func CoalescePositive(ptr *int, fallback int) int {
	if ptr != nil && *ptr > 0 {
		return *ptr
	}
	return fallback
}

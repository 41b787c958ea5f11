package ptr

// Ptr returns a pointer to v. Handy for optional fields in filters and DTOs.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

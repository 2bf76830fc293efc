package patch

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Convert applies fn to an optional value. A nil input stays nil.
func Convert[T, U any](ptr *T, fn func(T) (U, error)) (*U, error) {
	if ptr == nil {
		return nil, nil
	}
	v, err := fn(*ptr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

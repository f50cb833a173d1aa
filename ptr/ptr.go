package ptr

// Of returns a pointer to the provided value.
func Of[T any](value T) *T {
	return &value
}

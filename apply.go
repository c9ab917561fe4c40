package inputval

// Apply runs value through each transform in order and returns the result.
// It keeps multi-step sanitization chains readable without intermediate
// variables.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable transform from a chain of transforms.
// Preferred over repeated Apply calls when the same chain is used in
// several places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func True(value bool, args ...any) {
	// Intentionally left blanks
}

// False asserts that the given value is false.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func False(value bool, args ...any) {
	// Intentionally left blanks
}

// Nil asserts that the given value is nil.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func Nil(value any, args ...any) {
	// Intentionally left blanks
}

// NotNil asserts that the given value is not nil.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func NotNil(value any, args ...any) {
	// Intentionally left blanks
}

// EmptySlice asserts that the given slice is empty.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func EmptySlice[T any](slice []T, args ...any) {
	// Intentionally left blanks
}

// NonEmptySlice asserts that the given slice is not empty.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func NonEmptySlice[T any](slice []T, args ...any) {
	// Intentionally left blanks
}

// EmptyMap asserts that the given map is empty.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func EmptyMap[K comparable, V any](m map[K]V, args ...any) {
	// Intentionally left blanks
}

// NonEmptyMap asserts that the given map is not empty.
// In this assertions_disabled build the check is compiled out: it never
// panics, and args are ignored.
func NonEmptyMap[K comparable, V any](m map[K]V, args ...any) {
	// Intentionally left blanks
}

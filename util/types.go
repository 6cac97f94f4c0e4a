package util

// Equaler is implemented by values that can report semantic equality
// with another value of the same kind.
type Equaler interface {
	Equal(Equaler) bool
}

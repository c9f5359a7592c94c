package kontainer

// Comparer is implemented by types carrying their own ordering. Before
// reports whether the receiver sorts strictly before the argument.
type Comparer[T any] interface {
	Before(T) bool
}

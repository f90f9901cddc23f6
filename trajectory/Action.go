package trajectory

// Action describes a single agent action by wrapping a trait. Unlike a
// State, an Action carries no reward and is immutable once constructed.
type Action[T comparable] struct {
	trait T
}

// NewAction returns a new Action with the given trait
func NewAction[T comparable](trait T) Action[T] {
	return Action[T]{trait}
}

// Trait returns the descriptor that identifies the Action
func (a Action[T]) Trait() T {
	return a.trait
}

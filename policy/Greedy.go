package policy

import (
	"github.com/samuelfneumann/relearn/trajectory"
)

// Greedy selects the best recorded action for each state from a Store.
type Greedy[S, A comparable] struct {
	store *Store[S, A]
}

// NewGreedy creates and returns a new Greedy policy that selects
// actions from the given Store
func NewGreedy[S, A comparable](store *Store[S, A]) *Greedy[S, A] {
	return &Greedy[S, A]{store}
}

// SelectAction returns the best recorded action for the given state.
// The second return value is false when the Store holds no actions for
// the state, in which case the caller should explore instead.
func (g *Greedy[S, A]) SelectAction(
	state trajectory.State[S]) (trajectory.Action[A], bool) {
	return g.store.BestAction(state)
}

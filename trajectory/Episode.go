package trajectory

// Link pairs the state an agent was in with the action it took there.
// A sequence of Links forms an Episode.
type Link[S, A comparable] struct {
	State  State[S]
	Action Action[A]
}

// Episode is one complete observed trajectory through an environment,
// ordered from the initial state to the terminal state.
//
// Rewards are attached to the state entered, not to the transition
// itself: the reward for taking the action of Link i is carried by the
// state of Link i+1. Drivers therefore append a final Link holding the
// terminal state (with the episode's outcome as its reward) together
// with a synthetic action.
type Episode[S, A comparable] []Link[S, A]

// Returns sums the rewards of every state in the Episode, giving the
// undiscounted episodic return.
func (e Episode[S, A]) Returns() float64 {
	total := 0.0
	for _, link := range e {
		total += link.State.Reward()
	}
	return total
}

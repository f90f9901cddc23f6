// Package trajectory implements the states, actions, and episodes that
// make up an agent's experience of an environment.
//
// States and actions are thin wrappers around an application-supplied
// descriptor (or "trait") type. The library never inspects traits, it
// only uses them as map keys, which is why trait types must be
// comparable. Trait types should be pure value types: a trait holding
// a pointer or an interface compares by identity, which silently
// fragments a policy.Store the same way an inconsistent hash function
// would.
package trajectory

// State describes a single environmental state by wrapping a trait
// together with the reward received for entering that state.
//
// The reward is deliberately excluded from the identity of a State:
// two States constructed from equal traits refer to the same table
// entry regardless of their rewards.
type State[T comparable] struct {
	reward float64
	trait  T
}

// NewState returns a new State with the given trait and a reward of 0
func NewState[T comparable](trait T) State[T] {
	return State[T]{0, trait}
}

// NewRewardState returns a new State with the given trait and reward.
// Rewards are usually known at construction time, the exception being
// episode-terminal states whose reward is assigned with SetReward once
// the episode's outcome is known.
func NewRewardState[T comparable](reward float64, trait T) State[T] {
	return State[T]{reward, trait}
}

// Reward returns the reward received for entering the State
func (s State[T]) Reward() float64 {
	return s.reward
}

// SetReward sets the reward received for entering the State
func (s *State[T]) SetReward(reward float64) {
	s.reward = reward
}

// Trait returns the descriptor that identifies the State
func (s State[T]) Trait() T {
	return s.trait
}

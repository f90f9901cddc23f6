// Package qlearning implements the deterministic one-step Q-Learning
// algorithm over a tabular policy store.
//
// The update rule for each non-terminal step of an episode is
//
//	Q(s_t,a_t) ← Q(s_t,a_t) + α * (r_{t+1} + γ * max Q(s_{t+1},a) - Q(s_t,a_t))
//
// where r_{t+1} is the reward attached to the state entered by the
// step, and max Q(s_{t+1},a) is taken as 0 for states with no recorded
// actions. The terminal step has no successor; its (state, action)
// pair is recorded directly with the terminal state's reward so that
// later episodes can bootstrap from it.
package qlearning

import (
	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
	"github.com/samuelfneumann/relearn/utils/floatutils"
)

// QLearning implements the deterministic Q-Learning update. It holds
// no state between calls: the same instance may be reused freely, and
// repeated calls over the same episode are a valid way to accelerate
// convergence toward the fixed point.
type QLearning[S, A comparable] struct {
	learningRate float64
	discount     float64
}

// New creates a new QLearning learner from a Config, failing if the
// learning rate or discount is out of range
func New[S, A comparable](c Config) (*QLearning[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &QLearning[S, A]{c.LearningRate, c.Discount}, nil
}

// Learn performs one pass over an episode, updating the store with the
// one-step temporal-difference rule at every step. An empty episode is
// a no-op.
func (q *QLearning[S, A]) Learn(episode trajectory.Episode[S, A],
	store *policy.Store[S, A]) {
	for i := range episode {
		state, action, value := q.qValue(episode, i, store)
		store.Update(state, action, value)
	}
}

// qValue computes the new value of the (state, action) pair at the
// given step of the episode
func (q *QLearning[S, A]) qValue(episode trajectory.Episode[S, A], i int,
	store *policy.Store[S, A]) (trajectory.State[S], trajectory.Action[A],
	float64) {
	step := episode[i]
	if i == len(episode)-1 {
		// Terminal step: record the outcome reward directly
		return step.State, step.Action, step.State.Reward()
	}

	next := episode[i+1]
	qOld := store.Value(step.State, step.Action)
	qNext := floatutils.NoNaN(store.BestValue(next.State), 0)
	r := next.State.Reward()

	value := qOld + q.learningRate*(r+q.discount*qNext-qOld)
	return step.State, step.Action, value
}

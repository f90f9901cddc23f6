// Package qprobabilistic implements the non-deterministic Q-Learning
// algorithm over a tabular policy store.
//
// Unlike deterministic Q-Learning, this learner does not assume that a
// (state, action) pair always leads to the same successor state.
// Instead it counts how often each observed transition occurred and
// weighs rewards and bootstrapped values by the empirical transition
// probability:
//
//	Q(s_t,a_t) ← P(s_{t+1}|s_t,a_t) * r_{t+1} + γ * max Q(s_{t+1},a) * P(s_{t+1}|s_t,a_t)
//
// This rule suits environments where identical decisions can end
// differently, such as card draws.
//
// Note that the rule overwrites the previous estimate rather than
// blending with it: each call replaces Q(s_t,a_t) with a freshly
// estimated expectation, so repeated calls refine the estimate only
// through the accumulated transition counts.
package qprobabilistic

import (
	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
	"github.com/samuelfneumann/relearn/utils/floatutils"
)

// QProbabilistic implements the frequency-weighted Q-Learning update.
//
// The learner owns the transition-frequency memory, which accumulates
// monotonically across Learn calls and is never reset. Reuse the same
// instance across an entire experience set; reconstructing the learner
// per episode discards everything it has observed.
type QProbabilistic[S, A comparable] struct {
	discount float64

	// memory counts observations of the transition (s_t,a_t) → s_{t+1}
	memory map[S]map[A]map[S]int
}

// New creates a new QProbabilistic learner from a Config, failing if
// the discount is out of range
func New[S, A comparable](c Config) (*QProbabilistic[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &QProbabilistic[S, A]{
		discount: c.Discount,
		memory:   make(map[S]map[A]map[S]int),
	}, nil
}

// Learn performs one pass over an episode. It first records every
// transition of the episode in the frequency memory, then updates the
// store with the frequency-weighted rule at every step. An empty
// episode is a no-op.
func (q *QProbabilistic[S, A]) Learn(episode trajectory.Episode[S, A],
	store *policy.Store[S, A]) {
	for i := 0; i < len(episode)-1; i++ {
		q.observe(episode[i].State.Trait(), episode[i].Action.Trait(),
			episode[i+1].State.Trait())
	}
	for i := range episode {
		state, action, value := q.qValue(episode, i, store)
		store.Update(state, action, value)
	}
}

// observe increments the frequency count of the transition
// (state, action) → next
func (q *QProbabilistic[S, A]) observe(state S, action A, next S) {
	transitions, ok := q.memory[state]
	if !ok {
		transitions = make(map[A]map[S]int)
		q.memory[state] = transitions
	}
	frequencies, ok := transitions[action]
	if !ok {
		frequencies = make(map[S]int)
		transitions[action] = frequencies
	}
	frequencies[next]++
}

// qValue computes the new value of the (state, action) pair at the
// given step of the episode
func (q *QProbabilistic[S, A]) qValue(episode trajectory.Episode[S, A],
	i int, store *policy.Store[S, A]) (trajectory.State[S],
	trajectory.Action[A], float64) {
	step := episode[i]
	if i == len(episode)-1 {
		// Terminal step: record the outcome reward directly
		return step.State, step.Action, step.State.Reward()
	}

	next := episode[i+1]
	qNext := floatutils.NoNaN(store.BestValue(next.State), 0)
	r := next.State.Reward()

	// Transition probability: frequency of this transition over the
	// total observations of the (state, action) pair. The pair was
	// observed just before this call, so total cannot be 0, but guard
	// it anyway.
	frequencies := q.memory[step.State.Trait()][step.Action.Trait()]
	total := 0
	for _, count := range frequencies {
		total += count
	}
	if total == 0 {
		return step.State, step.Action, 0
	}
	prob := float64(frequencies[next.State.Trait()]) / float64(total)

	expectedR := prob * r
	return step.State, step.Action, expectedR + q.discount*(qNext*prob)
}

// Package policy implements the table of learned action values and the
// policies that select actions from it.
//
// A Store maps every experienced (state, action) pair to a learned
// value. Learners mutate the Store in place as they consume episodes,
// and drivers query it to act in the world.
package policy

import (
	"math"

	"github.com/samuelfneumann/relearn/trajectory"
	"github.com/samuelfneumann/relearn/utils/floatutils"
)

// Store holds the learned value of every experienced (state, action)
// pair, keyed by the state and action traits.
//
// A Store distinguishes "no recorded value" from "recorded value of 0".
// Value returns 0 for absent pairs, but BestValue, BestAction, and Best
// all report no knowledge for states that were never updated, which is
// the signal drivers use to fall back to exploration.
//
// When several actions of a state share the maximum value, the best
// queries return the action that was first recorded for that state.
//
// A Store is not safe for concurrent use. A learning pass and a reader
// choosing actions must not overlap in time.
type Store[S, A comparable] struct {
	values map[S]map[A]float64

	// order records the actions of each state in first-update order,
	// making the best queries deterministic under value ties
	order map[S][]A
}

// NewStore returns a new, empty Store
func NewStore[S, A comparable]() *Store[S, A] {
	return &Store[S, A]{
		values: make(map[S]map[A]float64),
		order:  make(map[S][]A),
	}
}

// Update upserts the value of the (state, action) pair
func (p *Store[S, A]) Update(state trajectory.State[S],
	action trajectory.Action[A], value float64) {
	p.upsert(state.Trait(), action.Trait(), value)
}

// upsert records value for the (state, action) trait pair
func (p *Store[S, A]) upsert(state S, action A, value float64) {
	actions, ok := p.values[state]
	if !ok {
		actions = make(map[A]float64)
		p.values[state] = actions
	}
	if _, ok := actions[action]; !ok {
		p.order[state] = append(p.order[state], action)
	}
	actions[action] = value
}

// Value returns the stored value of the (state, action) pair, or 0 if
// no value has been recorded. Reading an absent pair does not create
// an entry.
func (p *Store[S, A]) Value(state trajectory.State[S],
	action trajectory.Action[A]) float64 {
	return p.values[state.Trait()][action.Trait()]
}

// Actions returns a snapshot of every action experienced for the given
// state, mapped to its stored value. The snapshot is empty for a state
// with no recorded actions, and modifying it does not affect the Store.
func (p *Store[S, A]) Actions(
	state trajectory.State[S]) map[trajectory.Action[A]]float64 {
	actions := make(map[trajectory.Action[A]]float64)
	for trait, value := range p.values[state.Trait()] {
		actions[trajectory.NewAction(trait)] = value
	}
	return actions
}

// BestValue returns the maximum value among all actions recorded for
// the given state. If the state has no recorded actions, BestValue
// returns NaN so that callers can distinguish "no knowledge" from a
// best action whose value is 0.
func (p *Store[S, A]) BestValue(state trajectory.State[S]) float64 {
	_, value, ok := p.best(state.Trait())
	if !ok {
		return math.NaN()
	}
	return value
}

// BestAction returns the action achieving BestValue for the given
// state. The second return value reports whether any action has been
// recorded for the state.
func (p *Store[S, A]) BestAction(
	state trajectory.State[S]) (trajectory.Action[A], bool) {
	action, _, ok := p.best(state.Trait())
	return trajectory.NewAction(action), ok
}

// Best returns the best recorded action for the given state together
// with its value, computed in a single pass over the state's actions.
// The third return value reports whether any action has been recorded
// for the state; when it is false the returned value is NaN.
func (p *Store[S, A]) Best(
	state trajectory.State[S]) (trajectory.Action[A], float64, bool) {
	action, value, ok := p.best(state.Trait())
	if !ok {
		return trajectory.NewAction(action), math.NaN(), false
	}
	return trajectory.NewAction(action), value, true
}

// best finds the maximum-valued action of a state trait, breaking ties
// in favour of the first-recorded action
func (p *Store[S, A]) best(state S) (A, float64, bool) {
	order := p.order[state]
	if len(order) == 0 {
		var none A
		return none, 0, false
	}

	values := make([]float64, len(order))
	for i, action := range order {
		values[i] = p.values[state][action]
	}
	max, indices := floatutils.MaxSlice(values)
	return order[indices[0]], max, true
}

// Merge overlays another Store onto this one. Every (state, action)
// pair present in other is copied in, overwriting any value this Store
// already holds for the pair; pairs present only in this Store are
// preserved.
func (p *Store[S, A]) Merge(other *Store[S, A]) {
	for state, order := range other.order {
		for _, action := range order {
			p.upsert(state, action, other.values[state][action])
		}
	}
}

// Package agent defines the learner and policy interfaces
package agent

import (
	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
)

// Learner implements a learning algorithm that consumes one episode at
// a time and updates a policy store in place.
//
// A Learner never retains a reference to the store across calls, but a
// Learner may carry its own internal state between calls (for example,
// accumulated transition frequencies), so a single Learner instance
// should be reused across an entire experience set. Learn on an empty
// episode is a no-op.
type Learner[S, A comparable] interface {
	Learn(trajectory.Episode[S, A], *policy.Store[S, A])
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. SelectAction reports
// false when the policy cannot choose an action for the given state,
// which a driver uses as the signal to fall back to exploration.
type Policy[S, A comparable] interface {
	SelectAction(trajectory.State[S]) (trajectory.Action[A], bool)
}

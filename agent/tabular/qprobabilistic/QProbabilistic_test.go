package qprobabilistic

import (
	"math"
	"testing"

	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
)

// branch builds the 2-step episode s1 -a1-> terminal, where the
// terminal state has the given trait and carries the given reward
func branch(terminal int, reward float64) trajectory.Episode[int, int] {
	return trajectory.Episode[int, int]{
		{State: trajectory.NewState(1), Action: trajectory.NewAction(1)},
		{
			State:  trajectory.NewRewardState(reward, terminal),
			Action: trajectory.NewAction(0),
		},
	}
}

func newLearner(t *testing.T) *QProbabilistic[int, int] {
	t.Helper()
	q, err := New[int, int](Config{Discount: 0.9})
	if err != nil {
		t.Fatalf("could not construct learner: %v", err)
	}
	return q
}

func TestFrequencyWeightedBlend(t *testing.T) {
	// Two episodes share the decision (s1,a1) but diverge to different
	// terminal states with opposite rewards. The learned value of
	// (s1,a1) must be a probability-weighted blend, strictly between
	// the two raw rewards.
	q := newLearner(t)
	store := policy.NewStore[int, int]()

	win := branch(2, 1)
	loss := branch(3, -1)

	q.Learn(win, store)
	q.Learn(loss, store)

	got := store.Value(win[0].State, win[0].Action)
	if got <= -1 || got >= 1 {
		t.Errorf("expected blended value strictly in (-1, 1), got %v", got)
	}

	// After one win and one loss, the loss transition has probability
	// 1/2 and the loss branch bootstraps nothing, so the value is
	// exactly 0.5 * -1
	if got != -0.5 {
		t.Errorf("expected value -0.5, got %v", got)
	}
}

func TestMemoryAccumulatesAcrossCalls(t *testing.T) {
	// Replaying the winning branch shifts the transition probabilities
	// and therefore the estimate for the shared decision
	q := newLearner(t)
	store := policy.NewStore[int, int]()

	win := branch(2, 1)
	loss := branch(3, -1)

	for i := 0; i < 3; i++ {
		q.Learn(win, store)
	}
	q.Learn(loss, store)

	// The loss transition was observed once in four: prob = 1/4
	got := store.Value(win[0].State, win[0].Action)
	if math.Abs(got-(-0.25)) > 1e-12 {
		t.Errorf("expected value -0.25, got %v", got)
	}
}

func TestOverwriteNotBlend(t *testing.T) {
	// Unlike the deterministic rule, each call overwrites the previous
	// estimate: replaying the same single-branch episode leaves the
	// value at the freshly computed expectation, with no dependence on
	// the number of calls through the old estimate
	q := newLearner(t)
	store := policy.NewStore[int, int]()

	win := branch(2, 1)
	q.Learn(win, store)
	first := store.Value(win[0].State, win[0].Action)

	q.Learn(win, store)
	second := store.Value(win[0].State, win[0].Action)

	// Probability stays 1 on the only observed transition, but the
	// second call bootstraps from the terminal pair recorded by the
	// first: Q = 1*1 + γ*(1*1)
	if first != 1 {
		t.Errorf("expected first estimate 1, got %v", first)
	}
	if math.Abs(second-1.9) > 1e-12 {
		t.Errorf("expected second estimate 1.9, got %v", second)
	}
}

func TestTerminalPairRecorded(t *testing.T) {
	q := newLearner(t)
	store := policy.NewStore[int, int]()

	win := branch(2, 1)
	q.Learn(win, store)

	if got := store.Value(win[1].State, win[1].Action); got != 1 {
		t.Errorf("expected terminal pair value 1, got %v", got)
	}
}

func TestEmptyEpisodeIsNoOp(t *testing.T) {
	q := newLearner(t)
	store := policy.NewStore[int, int]()

	q.Learn(nil, store)

	if actions := store.Actions(trajectory.NewState(1)); len(actions) != 0 {
		t.Errorf("empty episode created %d entries", len(actions))
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := New[int, int](Config{Discount: -0.1}); err == nil {
		t.Error("expected an error for negative discount")
	}
	if _, err := New[int, int](Config{Discount: 1.1}); err == nil {
		t.Error("expected an error for discount above 1")
	}
	if _, err := New[int, int](Config{Discount: 1}); err != nil {
		t.Errorf("expected boundary config to be valid, got %v", err)
	}
}

package policy

import (
	"math"
	"testing"

	"github.com/samuelfneumann/relearn/trajectory"
)

func state(trait string) trajectory.State[string] {
	return trajectory.NewState(trait)
}

func action(trait uint) trajectory.Action[uint] {
	return trajectory.NewAction(trait)
}

func TestUpdateValueRoundTrip(t *testing.T) {
	store := NewStore[string, uint]()
	store.Update(state("hello"), action(1), 0)
	store.Update(state("world"), action(2), 1)

	if got := store.Value(state("hello"), action(1)); got != 0 {
		t.Errorf("expected value 0, got %v", got)
	}
	if got := store.Value(state("world"), action(2)); got != 1 {
		t.Errorf("expected value 1, got %v", got)
	}
}

func TestValueIgnoresReward(t *testing.T) {
	// The reward carried by a state must not affect which entry a
	// lookup finds
	store := NewStore[string, uint]()
	store.Update(trajectory.NewRewardState(1.0, "hello"), action(1), 0.5)

	if got := store.Value(trajectory.NewRewardState(-1.0, "hello"),
		action(1)); got != 0.5 {
		t.Errorf("expected value 0.5 regardless of reward, got %v", got)
	}
}

func TestReadDoesNotCreateEntries(t *testing.T) {
	store := NewStore[string, uint]()

	if got := store.Value(state("ghost"), action(1)); got != 0 {
		t.Errorf("expected value 0 for absent pair, got %v", got)
	}
	if actions := store.Actions(state("ghost")); len(actions) != 0 {
		t.Errorf("plain read created %d ghost entries", len(actions))
	}
	if _, ok := store.BestAction(state("ghost")); ok {
		t.Error("plain read created a best action")
	}
}

func TestActionsSnapshot(t *testing.T) {
	store := NewStore[string, uint]()
	store.Update(state("hello"), action(1), 0)
	store.Update(state("hello"), action(2), 1)

	actions := store.Actions(state("hello"))
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[action(2)] != 1 {
		t.Errorf("expected value 1 for action 2, got %v", actions[action(2)])
	}

	// Mutating the snapshot must not affect the store
	actions[action(3)] = 2
	if got := store.Actions(state("hello")); len(got) != 2 {
		t.Errorf("snapshot mutation leaked into the store")
	}
}

func TestBestQueries(t *testing.T) {
	store := NewStore[string, uint]()
	store.Update(state("hello"), action(1), 0)
	store.Update(state("world"), action(2), 1)
	store.Update(state("world"), action(3), 0.5)

	best, ok := store.BestAction(state("world"))
	if !ok {
		t.Fatal("expected a best action for world")
	}
	if best.Trait() != 2 {
		t.Errorf("expected best action 2, got %v", best.Trait())
	}
	if got := store.BestValue(state("world")); got != 1 {
		t.Errorf("expected best value 1, got %v", got)
	}

	// BestValue must agree with Value at the best action
	if store.BestValue(state("world")) !=
		store.Value(state("world"), best) {
		t.Error("best value disagrees with the value of the best action")
	}

	// A best action with value 0 is still a best action
	best, ok = store.BestAction(state("hello"))
	if !ok || best.Trait() != 1 {
		t.Errorf("expected best action 1, got %v (ok=%v)", best.Trait(), ok)
	}

	// Best combines both queries
	both, value, ok := store.Best(state("world"))
	if !ok || both.Trait() != 2 || value != 1 {
		t.Errorf("expected (2, 1, true), got (%v, %v, %v)",
			both.Trait(), value, ok)
	}
}

func TestNoKnowledge(t *testing.T) {
	store := NewStore[string, uint]()

	if got := store.BestValue(state("unseen")); !math.IsNaN(got) {
		t.Errorf("expected NaN for unseen state, got %v", got)
	}
	if _, ok := store.BestAction(state("unseen")); ok {
		t.Error("expected no best action for unseen state")
	}
	if _, value, ok := store.Best(state("unseen")); ok || !math.IsNaN(value) {
		t.Errorf("expected (none, NaN) for unseen state, got (%v, %v)",
			value, ok)
	}
}

func TestBestTieBreak(t *testing.T) {
	// Equal values: the first-recorded action wins
	store := NewStore[string, uint]()
	store.Update(state("tie"), action(7), 0.5)
	store.Update(state("tie"), action(3), 0.5)
	store.Update(state("tie"), action(5), 0.5)

	for i := 0; i < 10; i++ {
		best, ok := store.BestAction(state("tie"))
		if !ok || best.Trait() != 7 {
			t.Fatalf("expected first-recorded action 7, got %v", best.Trait())
		}
	}

	// A later, strictly greater value takes over
	store.Update(state("tie"), action(5), 0.6)
	if best, _ := store.BestAction(state("tie")); best.Trait() != 5 {
		t.Errorf("expected action 5 after value increase, got %v",
			best.Trait())
	}
}

func TestMerge(t *testing.T) {
	lhs := NewStore[string, uint]()
	rhs := NewStore[string, uint]()

	lhs.Update(state("hello"), action(1), 0)
	lhs.Update(state("world"), action(2), -1)

	rhs.Update(state("hello"), action(1), 0)
	rhs.Update(state("cruel"), action(2), 0)
	rhs.Update(state("world"), action(3), 1)
	rhs.Update(state("world"), action(2), 1)

	lhs.Merge(rhs)

	// rhs wins on conflict
	if got := lhs.Value(state("world"), action(2)); got != 1 {
		t.Errorf("expected merged value 1, got %v", got)
	}
	// rhs-only entries are copied in
	if got := lhs.Value(state("cruel"), action(2)); got != 0 {
		t.Errorf("expected merged value 0, got %v", got)
	}
	if got := lhs.Value(state("world"), action(3)); got != 1 {
		t.Errorf("expected merged value 1, got %v", got)
	}
	// lhs-only entries are preserved
	if got := lhs.Value(state("hello"), action(1)); got != 0 {
		t.Errorf("expected preserved value 0, got %v", got)
	}
}

package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/relearn/trajectory"
)

// EGreedy implements an ε-greedy policy over a Store: with probability
// 1-ε it selects the best recorded action for a state, and with
// probability ε it selects uniformly at random from a fixed set of
// candidate actions. States with no recorded actions are always
// selected from uniformly at random.
type EGreedy[S, A comparable] struct {
	store   *Store[S, A]
	actions []trajectory.Action[A]
	epsilon float64
	seed    rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected; actions is the
// set of candidate actions available in every state
func NewEGreedy[S, A comparable](store *Store[S, A],
	actions []trajectory.Action[A], e float64,
	seed uint64) (*EGreedy[S, A], error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("egreedy: at least one candidate action " +
			"is required")
	}
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("egreedy: epsilon must be in [0, 1], "+
			"got %v", e)
	}

	source := rand.NewSource(seed)
	candidates := make([]trajectory.Action[A], len(actions))
	copy(candidates, actions)

	return &EGreedy[S, A]{store, candidates, e, source}, nil
}

// SelectAction selects an action from an ε-greedy policy. The second
// return value is always true: an EGreedy policy can act in any state.
func (p *EGreedy[S, A]) SelectAction(
	state trajectory.State[S]) (trajectory.Action[A], bool) {
	numActions := len(p.actions)

	// Find the greedy action among the candidates
	greedyAction := -1
	if best, _, ok := p.store.Best(state); ok {
		for i, action := range p.actions {
			if action.Trait() == best.Trait() {
				greedyAction = i
				break
			}
		}
	}

	// Calculate the ε probability of choosing any action at random
	epsilon := p.epsilon
	if greedyAction < 0 {
		// No knowledge of this state: explore uniformly
		epsilon = 1.0
		greedyAction = 0
	}
	prob := epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := 0; i < numActions; i++ {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += (1.0 - epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities and sample from it
	dist := distuv.NewCategorical(actionProbabilities, p.seed)
	return p.actions[int(dist.Rand())], true
}

package blackjack

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
)

// Client is the learning player. It decides to draw or stay by
// consulting a policy store, drawing at random in hands it knows
// nothing useful about, and it counts how often each kind of decision
// was made.
type Client struct {
	Hand

	// PolicyActions counts decisions taken from the policy store and
	// RandomActions counts decisions taken at random, so a driver can
	// report how often the Client acts on what it has learned
	PolicyActions int
	RandomActions int

	uniform distuv.Uniform
}

// NewClient creates and returns a new Client seeded with seed
func NewClient(seed uint64) *Client {
	return &Client{
		uniform: distuv.Uniform{
			Min: 0, Max: 1,
			Src: rand.NewSource(seed),
		},
	}
}

// Draw decides whether the Client draws another card. The decision
// follows the best recorded action for the current hand when one
// exists with a positive value; otherwise it is a coin flip.
func (c *Client) Draw(store *policy.Store[HandState, bool]) bool {
	state := trajectory.NewState(c.State())
	if best, value, ok := store.Best(state); ok && value > 0 {
		c.PolicyActions++
		return best.Trait()
	}
	c.RandomActions++
	return c.uniform.Rand() > 0.5
}

// PlayRound plays one round of blackjack between the Client and the
// Dealer, returning the round as an episode together with whether the
// Client won. The terminal state of the episode carries +1 for a win
// and -1 for a loss.
func PlayRound(client *Client, dealer *Dealer,
	store *policy.Store[HandState, bool]) (
	trajectory.Episode[HandState, bool], bool) {
	defer client.Clear()
	defer dealer.Clear()

	var episode trajectory.Episode[HandState, bool]

	// One card to the dealer, two to the client
	dealer.ResetDeck()
	dealer.Insert(dealer.Deal())
	client.Insert(dealer.Deal())
	client.Insert(dealer.Deal())

	// The client draws until it stays or its hand is burnt
	for !client.Burnt() {
		state := trajectory.NewState(client.State())
		draw := client.Draw(store)
		episode = append(episode, trajectory.Link[HandState, bool]{
			State:  state,
			Action: trajectory.NewAction(draw),
		})
		if !draw {
			break
		}
		client.Insert(dealer.Deal())
	}

	// The dealer plays out its fixed rules
	for dealer.Draw() {
		dealer.Insert(dealer.Deal())
	}

	// Compare hands and attach the outcome to a terminal link
	won := Compare(&client.Hand, &dealer.Hand)
	reward := -1.0
	if won {
		reward = 1.0
	}
	episode = append(episode, trajectory.Link[HandState, bool]{
		State:  trajectory.NewRewardState(reward, client.State()),
		Action: trajectory.NewAction(false),
	})

	return episode, won
}

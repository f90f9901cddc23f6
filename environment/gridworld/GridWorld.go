// Package gridworld implements a 2D gridworld driver for tabular
// learners.
//
// A gridworld is a finite, deterministic MDP: the agent moves between
// grid blocks, some blocks are occupied (walls), and some carry a
// positive or negative reward. The agent's goal is a policy that
// reaches the positive-reward block. Blocks are identified by their
// coordinates, which serve as the state trait; moves serve as the
// action trait.
package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
)

// Coord identifies a single grid block. Coord is the state trait of
// the gridworld.
type Coord struct {
	X, Y int
}

// Direction is a movement between adjacent grid blocks. Direction is
// the action trait of the gridworld.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down

	// Stay is the synthetic action attached to the terminal link of an
	// episode, which has no further move to make
	Stay
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Stay"
	}
}

// Directions are the movement actions available in every block
var Directions = []Direction{Left, Right, Up, Down}

// Block holds the contents of one grid coordinate
type Block struct {
	Reward   float64
	Occupied bool
}

// World holds the grid blocks of a gridworld. The boundary ring of the
// grid is occupied so that the agent can never leave it.
type World struct {
	rows, cols int
	blocks     map[Coord]Block
}

// New creates a new World with the given dimensions. All boundary
// blocks are occupied and carry the danger reward; the goal block
// carries the goal reward; every other block is free with a reward of
// 0.
func New(rows, cols int, goal Coord, goalReward,
	dangerReward float64) (*World, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("gridworld: %dx%d leaves no free blocks "+
			"inside the boundary", rows, cols)
	}
	if goal.X <= 0 || goal.X >= cols-1 || goal.Y <= 0 || goal.Y >= rows-1 {
		return nil, fmt.Errorf("gridworld: goal %v is not inside the "+
			"boundary", goal)
	}

	blocks := make(map[Coord]Block)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := Coord{x, y}
			if x == 0 || x == cols-1 || y == 0 || y == rows-1 {
				blocks[c] = Block{Reward: dangerReward, Occupied: true}
			} else {
				blocks[c] = Block{}
			}
		}
	}
	blocks[goal] = Block{Reward: goalReward}

	return &World{rows, cols, blocks}, nil
}

// Dims gets the rows and columns of the World
func (w *World) Dims() (r, c int) {
	return w.rows, w.cols
}

// At returns the block at the given coordinate
func (w *World) At(c Coord) Block {
	return w.blocks[c]
}

// SetBlock replaces the block at the given coordinate, allowing walls
// and danger blocks to be placed inside the boundary
func (w *World) SetBlock(c Coord, b Block) {
	if _, ok := w.blocks[c]; ok {
		w.blocks[c] = b
	}
}

// Move returns the coordinate reached by moving from c in the given
// direction. Moves into occupied blocks and moves off the grid leave
// the agent where it is.
func (w *World) Move(c Coord, d Direction) Coord {
	next := c
	switch d {
	case Left:
		next.X--
	case Right:
		next.X++
	case Up:
		next.Y--
	case Down:
		next.Y++
	}

	block, ok := w.blocks[next]
	if !ok || block.Occupied {
		return c
	}
	return next
}

// Terminal returns whether entering the given coordinate ends an
// episode. Any block carrying a nonzero reward is terminal.
func (w *World) Terminal(c Coord) bool {
	return w.blocks[c].Reward != 0
}

// state builds the State for a coordinate, carrying the block's reward
func (w *World) state(c Coord) trajectory.State[Coord] {
	return trajectory.NewRewardState(w.blocks[c].Reward, c)
}

// Explore performs a random walk from start until a terminal block is
// entered, returning the walk as an episode. The episode ends with a
// terminal link holding the terminal state and the synthetic Stay
// action.
func (w *World) Explore(rng *rand.Rand,
	start Coord) trajectory.Episode[Coord, Direction] {
	var episode trajectory.Episode[Coord, Direction]
	curr := start
	state := w.state(curr)

	for !w.Terminal(curr) {
		d := Directions[rng.Intn(len(Directions))]
		next := w.Move(curr, d)
		episode = append(episode, trajectory.Link[Coord, Direction]{
			State:  state,
			Action: trajectory.NewAction(d),
		})
		curr = next
		state = w.state(curr)
	}

	// Terminal link: the state carries the episode's outcome reward
	episode = append(episode, trajectory.Link[Coord, Direction]{
		State:  state,
		Action: trajectory.NewAction(Stay),
	})
	return episode
}

// OnPolicy follows the best recorded action in each block from start
// until a terminal block or a block with no recorded actions is
// reached, returning the path taken. maxSteps bounds the walk so that
// a policy that loops cannot run forever.
func (w *World) OnPolicy(store *policy.Store[Coord, Direction], start Coord,
	maxSteps int) []Coord {
	greedy := policy.NewGreedy(store)
	path := []Coord{start}
	curr := start

	for i := 0; i < maxSteps && !w.Terminal(curr); i++ {
		action, ok := greedy.SelectAction(w.state(curr))
		if !ok {
			break
		}
		curr = w.Move(curr, action.Trait())
		path = append(path, curr)
	}
	return path
}

// Package experiment implements functionality for running an
// experiment: repeatedly generating episodes, feeding them to a
// learner, and tracking the returns the agent achieves.
package experiment

import (
	"github.com/samuelfneumann/relearn/experiment/tracker"
)

// Experiment outlines structs that can run experiments. Run runs every
// episode of the experiment; RunEpisode runs a single episode and
// returns whether the experiment has finished. Save writes all data
// tracked during the experiment to disk.
type Experiment interface {
	Run()
	RunEpisode() bool
	Save() error

	// Register adds a tracker.Tracker to the (possibly already
	// running) experiment
	Register(t tracker.Tracker)
}

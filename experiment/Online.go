package experiment

import (
	"github.com/samuelfneumann/relearn/agent"
	"github.com/samuelfneumann/relearn/experiment/tracker"
	"github.com/samuelfneumann/relearn/policy"
	"github.com/samuelfneumann/relearn/trajectory"
)

// Generator produces one episode of experience, usually by exploring
// an environment
type Generator[S, A comparable] func() trajectory.Episode[S, A]

// Online is an Experiment that generates episodes and learns from each
// one as it arrives. Each generated episode is passed to the learner
// repeats times before the next episode is generated; repeated passes
// over the same episode accelerate convergence of the value table.
type Online[S, A comparable] struct {
	generate Generator[S, A]
	learner  agent.Learner[S, A]
	store    *policy.Store[S, A]

	episodes int
	repeats  int
	current  int
	trackers []tracker.Tracker
}

// NewOnline creates and returns a new online experiment which runs
// episodes many episodes, passing each to the learner repeats times,
// and tracks episodic returns with the given trackers
func NewOnline[S, A comparable](generate Generator[S, A],
	learner agent.Learner[S, A], store *policy.Store[S, A],
	episodes, repeats int, trackers ...tracker.Tracker) *Online[S, A] {
	return &Online[S, A]{
		generate: generate,
		learner:  learner,
		store:    store,
		episodes: episodes,
		repeats:  repeats,
		trackers: trackers,
	}
}

// Register adds a tracker.Tracker to the experiment
func (o *Online[S, A]) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Store returns the policy store the experiment trains
func (o *Online[S, A]) Store() *policy.Store[S, A] {
	return o.store
}

// RunEpisode generates and learns from a single episode, returning
// whether the experiment has finished
func (o *Online[S, A]) RunEpisode() bool {
	episode := o.generate()
	for _, t := range o.trackers {
		t.Track(episode.Returns())
	}

	for i := 0; i < o.repeats; i++ {
		o.learner.Learn(episode, o.store)
	}

	o.current++
	return o.current >= o.episodes
}

// Run runs the entire experiment for all episodes
func (o *Online[S, A]) Run() {
	ended := false
	for !ended {
		ended = o.RunEpisode()
	}
}

// Save saves all the data cached by the trackers to disk, returning
// the first error encountered
func (o *Online[S, A]) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

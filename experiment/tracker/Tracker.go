// Package tracker implements tracking of data generated while running
// an experiment
package tracker

// Tracker tracks data generated during an experiment. Experiments send
// the return of every finished episode to each registered Tracker with
// Track; once an experiment has been run, Save writes all tracked data
// to disk.
type Tracker interface {
	Track(episodeReturn float64)
	Save() error
}

package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Return tracks and saves the episodic return in an experiment: one
// float64 per finished episode, in the order the episodes were run.
type Return struct {
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which saves its
// data to the file with the given name
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track records the return of one finished episode
func (r *Return) Track(episodeReturn float64) {
	r.episodeReturns = append(r.episodeReturns, episodeReturn)
}

// Mean returns the mean episodic return tracked so far, or 0 if no
// episodes have been tracked
func (r *Return) Mean() float64 {
	if len(r.episodeReturns) == 0 {
		return 0
	}
	return stat.Mean(r.episodeReturns, nil)
}

// Max returns the maximum episodic return tracked so far, or 0 if no
// episodes have been tracked
func (r *Return) Max() float64 {
	if len(r.episodeReturns) == 0 {
		return 0
	}
	return floats.Max(r.episodeReturns)
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return) Save() error {
	file, err := os.Create(r.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(r.episodeReturns); err != nil {
		return fmt.Errorf("save: could not encode return data: %v", err)
	}
	return nil
}

// LoadData loads the episodic returns previously saved by a Return
// Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open save file: %v", err)
	}
	defer file.Close()

	var episodeReturns []float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&episodeReturns); err != nil {
		return nil, fmt.Errorf("loadData: could not decode return data: %v",
			err)
	}
	return episodeReturns, nil
}

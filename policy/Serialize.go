package policy

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Triplet is a single (state, action, value) entry of a Store. A slice
// of Triplets is the serialized form of a Store.
type Triplet[S, A comparable] struct {
	State  S
	Action A
	Value  float64
}

// Triplets returns every entry of the Store as a slice of Triplets.
// Entries of a state appear in first-update order.
func (p *Store[S, A]) Triplets() []Triplet[S, A] {
	var triplets []Triplet[S, A]
	for state, order := range p.order {
		for _, action := range order {
			triplets = append(triplets, Triplet[S, A]{
				State:  state,
				Action: action,
				Value:  p.values[state][action],
			})
		}
	}
	return triplets
}

// Save writes the Store to the file with the given name, overwriting
// any existing file. The state and action trait types must be
// encodable by encoding/gob.
func (p *Store[S, A]) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(p.Triplets()); err != nil {
		return fmt.Errorf("save: could not encode policy store: %v", err)
	}
	return nil
}

// Load reads a Store previously written with Save from the file with
// the given name
func Load[S, A comparable](filename string) (*Store[S, A], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load: could not open save file: %v", err)
	}
	defer file.Close()

	var triplets []Triplet[S, A]
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&triplets); err != nil {
		return nil, fmt.Errorf("load: could not decode policy store: %v", err)
	}

	store := NewStore[S, A]()
	for _, t := range triplets {
		store.upsert(t.State, t.Action, t.Value)
	}
	return store, nil
}

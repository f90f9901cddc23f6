package qprobabilistic

import (
	"fmt"
)

// Config represents a configuration for the QProbabilistic learner
type Config struct {
	Discount float64 // γ: weight of estimated future value
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1], got %v", c.Discount)
	}
	return nil
}

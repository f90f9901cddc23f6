package qlearning

import (
	"fmt"
)

// Config represents a configuration for the QLearning learner
type Config struct {
	LearningRate float64 // α: weight of new information over the old estimate
	Discount     float64 // γ: weight of estimated future value
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1], got %v",
			c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1], got %v", c.Discount)
	}
	return nil
}

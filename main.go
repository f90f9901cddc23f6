package main

import (
	"github.com/samuelfneumann/relearn/examples"
)

func main() {
	examples.Gridworld()
	examples.Blackjack()
}

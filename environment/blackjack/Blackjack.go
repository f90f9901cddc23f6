// Package blackjack implements a Blackjack/21 card game driver for
// tabular learners.
//
// Blackjack is a non-deterministic environment: the same hand and the
// same decision can end in different successor hands depending on the
// card drawn, which makes it a natural fit for the probabilistic
// learner. The state trait is a compact summary of the hand held; the
// action trait is the draw/stay decision.
package blackjack

import (
	"golang.org/x/exp/rand"
)

// Card is a single playing card. Aces carry both of their values.
type Card struct {
	Name  string
	Label string
	Low   int // lowest value of the card
	High  int // highest value of the card; equal to Low except for aces
}

var names = []string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var labels = []string{"♠", "♥", "♦", "♣"}

// Deck returns a full 52-card playing deck
func Deck() []Card {
	var deck []Card
	for i, name := range names {
		low, high := i+1, i+1
		switch {
		case name == "Ace":
			high = 11
		case low > 10: // Face cards
			low, high = 10, 10
		}
		for _, label := range labels {
			deck = append(deck, Card{name, label, low, high})
		}
	}
	return deck
}

// HandState is a compact summary of a hand: the minimum and maximum
// totals the hand can count as. HandState is the state trait of the
// blackjack game.
type HandState struct {
	Min, Max int
}

// Hand is the set of cards currently held by a player
type Hand struct {
	cards []Card
}

// Insert adds a card to the Hand
func (h *Hand) Insert(c Card) {
	h.cards = append(h.cards, c)
}

// Clear removes every card from the Hand
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// MinValue is the value of the Hand counting every ace low
func (h *Hand) MinValue() int {
	value := 0
	for _, c := range h.cards {
		value += c.Low
	}
	return value
}

// MaxValue is the value of the Hand counting every ace high
func (h *Hand) MaxValue() int {
	value := 0
	for _, c := range h.cards {
		value += c.High
	}
	return value
}

// Blackjack returns whether the Hand is a natural blackjack: exactly
// two cards, an ace and a ten-valued card
func (h *Hand) Blackjack() bool {
	if len(h.cards) != 2 {
		return false
	}
	first, second := h.cards[0], h.cards[1]
	if second.Name == "Ace" {
		first, second = second, first
	}
	return first.Name == "Ace" && second.Low == 10
}

// Burnt returns whether the Hand exceeds 21 under its lowest count
func (h *Hand) Burnt() bool {
	return h.MinValue() > 21
}

// State summarizes the Hand as its state trait
func (h *Hand) State() HandState {
	return HandState{Min: h.MinValue(), Max: h.MaxValue()}
}

// Compare returns true if the left hand beats the right hand
func Compare(lhs, rhs *Hand) bool {
	if lhs.Blackjack() {
		return true
	} else if rhs.Blackjack() {
		return false
	}

	if lhs.MinValue() > 21 {
		return false
	} else if rhs.MinValue() > 21 {
		return true
	}

	return lhs.MaxValue() > rhs.MaxValue()
}

// Dealer is the house: it deals cards from a shuffled deck and plays
// its own hand by fixed rules.
type Dealer struct {
	Hand
	deck []Card
	rng  *rand.Rand
}

// NewDealer creates and returns a new Dealer dealing from a freshly
// shuffled deck seeded with seed
func NewDealer(seed uint64) *Dealer {
	d := &Dealer{rng: rand.New(rand.NewSource(seed))}
	d.ResetDeck()
	return d
}

// ResetDeck starts a new, randomly shuffled deck
func (d *Dealer) ResetDeck() {
	d.deck = Deck()
	d.rng.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// Deal removes and returns the top card of the deck, reshuffling a
// fresh deck when the current one runs out
func (d *Dealer) Deal() Card {
	if len(d.deck) == 0 {
		d.ResetDeck()
	}
	card := d.deck[0]
	d.deck = d.deck[1:]
	return card
}

// Draw reports whether the Dealer draws another card. The house always
// draws until 17 is reached.
func (d *Dealer) Draw() bool {
	return d.MinValue() < 17 || d.MaxValue() < 17
}
